// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlstore/fault"
	"github.com/bitmark-inc/avlstore/hashtable"
)

// formats for displaying keys and values
const (
	keyFormat   = "%q"
	valueFormat = "%q"
)

// a table together with the output for the script commands
type session struct {
	log        *logger.L
	table      *hashtable.Table[string]
	values     *stringValues
	w          io.Writer
	operations int
}

type commandFunc func(s *session, arguments []string) error

type commandInfo struct {
	minArgs int
	maxArgs int // -1 => no limit
	run     commandFunc
}

var commands = map[string]commandInfo{
	"insert":  {2, -1, (*session).insert},
	"get":     {1, 1, (*session).get},
	"remove":  {1, 1, (*session).remove},
	"count":   {0, 0, (*session).count},
	"keys":    {0, 0, (*session).keys},
	"values":  {0, 0, (*session).showValues},
	"pairs":   {0, 0, (*session).pairs},
	"print":   {0, 0, (*session).print},
	"buckets": {0, 0, (*session).buckets},
	"check":   {0, 0, (*session).check},
	"clear":   {0, 0, (*session).clear},
	"stats":   {0, 0, (*session).stats},
}

func newSession(log *logger.L, table *hashtable.Table[string], values *stringValues, w io.Writer) *session {
	return &session{
		log:    log,
		table:  table,
		values: values,
		w:      w,
	}
}

// run all the commands of a script, stopping at the first error
func (s *session) run(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		if err := s.execute(scanner.Text()); nil != err {
			s.log.Errorf("%s:%d: error: %s", name, lineNumber, err)
			return fmt.Errorf("%s:%d: %w", name, lineNumber, err)
		}
	}
	return scanner.Err()
}

// process a single script line
func (s *session) execute(line string) error {
	fields := strings.Fields(line)
	if 0 == len(fields) || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name := strings.ToLower(fields[0])
	arguments := fields[1:]

	info, ok := commands[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, fault.ErrInvalidCommand)
	}
	if len(arguments) < info.minArgs || (info.maxArgs >= 0 && len(arguments) > info.maxArgs) {
		return fmt.Errorf("%s: %w", name, fault.ErrWrongArgumentCount)
	}

	s.log.Debugf("command: %s  arguments: %q", name, arguments)
	s.operations += 1
	return info.run(s, arguments)
}

func (s *session) insert(arguments []string) error {
	key, err := parseKey(arguments[0])
	if nil != err {
		return err
	}
	value := strings.Join(arguments[1:], " ")
	if s.table.Insert(key, value) {
		fmt.Fprintf(s.w, "added: %s\n", arguments[0])
	} else {
		fmt.Fprintf(s.w, "replaced: %s\n", arguments[0])
	}
	return nil
}

func (s *session) get(arguments []string) error {
	key, err := parseKey(arguments[0])
	if nil != err {
		return err
	}
	value, found := s.table.Get(key)
	if !found {
		fmt.Fprintf(s.w, "%s: %s\n", arguments[0], fault.ErrKeyNotFound)
		return nil
	}
	fmt.Fprintf(s.w, "%s: "+valueFormat+"\n", arguments[0], value)
	return nil
}

func (s *session) remove(arguments []string) error {
	key, err := parseKey(arguments[0])
	if nil != err {
		return err
	}
	if !s.table.Remove(key) {
		fmt.Fprintf(s.w, "%s: %s\n", arguments[0], fault.ErrKeyNotFound)
		return nil
	}
	fmt.Fprintf(s.w, "removed: %s\n", arguments[0])
	return nil
}

func (s *session) count(arguments []string) error {
	fmt.Fprintf(s.w, "%d\n", s.table.Count())
	return nil
}

func (s *session) keys(arguments []string) error {
	return s.table.PrintKeys(s.w, keyFormat)
}

func (s *session) showValues(arguments []string) error {
	return s.table.PrintValues(s.w, valueFormat)
}

func (s *session) pairs(arguments []string) error {
	s.table.Pairs().Each(func(_ int, pair hashtable.Pair[string]) bool {
		fmt.Fprintf(s.w, keyFormat+" "+valueFormat+"\n", pair.Key.Bytes(), pair.Value)
		return true
	})
	return nil
}

func (s *session) print(arguments []string) error {
	return s.table.Print(s.w, keyFormat, valueFormat)
}

func (s *session) buckets(arguments []string) error {
	heights := s.table.BucketHeights()
	for i, size := range s.table.BucketSizes() {
		if 0 == size {
			continue
		}
		fmt.Fprintf(s.w, "bucket: %3d  size: %3d  height: %2d\n", i, size, heights[i])
	}
	return nil
}

func (s *session) check(arguments []string) error {
	if err := s.table.Check(); nil != err {
		return err
	}
	fmt.Fprintf(s.w, "ok: %d entries\n", s.table.Count())
	return nil
}

func (s *session) clear(arguments []string) error {
	s.table.Clear()
	return nil
}
