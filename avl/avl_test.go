// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlstore/avl"
	"github.com/bitmark-inc/avlstore/fault"
)

// key with attached data, ordered by key only
type item struct {
	key   string
	value string
}

func (i item) String() string {
	return i.key
}

type itemCapabilities struct{}

func (itemCapabilities) Compare(a item, b item) int { return strings.Compare(a.key, b.key) }
func (itemCapabilities) Clone(e item) item          { return e }
func (itemCapabilities) Destroy(e item)             {}

func newItemTree() *avl.Tree[item] {
	return avl.New[item](itemCapabilities{}, avl.OwnedMove)
}

func dataItem(key string) item {
	return item{key: key, value: "data:" + key}
}

// print the tree into the test log
func logTree(t *testing.T, tree *avl.Tree[item]) {
	var b bytes.Buffer
	depth := tree.Print(&b, true)
	t.Logf("tree:\n%s", b.String())
	t.Logf("depth: %d", depth)
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}


func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newItemTree()
		for _, key := range addList {
			tree.Insert(dataItem(key))
		}

		if err := tree.Check(); nil != err {
			logTree(t, tree)
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				if tree.Remove(item{key: key}) {
					t.Fatalf("delete of absent: %q returned true", key)
				}
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}

			dv, found := tree.Get(item{key: key})
			if !found {
				t.Fatalf("get before delete: %q not found", key)
			}
			ev := "data:" + key
			if dv.value != ev {
				t.Fatalf("get returned: %q  expected: %q", dv.value, ev)
			}
			if !tree.Remove(item{key: key}) {
				t.Fatalf("delete: %q returned false", key)
			}
			if _, found := tree.Get(item{key: key}); found {
				t.Fatalf("deleted key: %q still found", key)
			}
		}

		if err := tree.Check(); nil != err {
			logTree(t, tree)
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

		// everything not yet deleted must still be present
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue
			}
			if _, found := tree.Get(item{key: key}); !found {
				t.Fatalf("remaining key: %q not found", key)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Remove(item{key: key}) {
				t.Fatalf("delete: %q returned false", key)
			}
		}
		if !tree.IsEmpty() {
			logTree(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Count() || 0 != tree.Height() {
			t.Fatalf("empty tree count: %d  height: %d", tree.Count(), tree.Height())
		}
	}
}

// traverse the tree forwards and backwards
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newItemTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(dataItem(key))
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	forward := tree.ToSequence(true)
	if forward.Len() != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", forward.Len(), len(expected))
	}
	forward.Each(func(i int, e item) bool {
		if e.key != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", e.key, expected[i])
		}
		return true
	})

	backward := tree.ToSequence(false)
	n := 0
	backward.Each(func(i int, e item) bool {
		j := len(expected) - 1 - i
		if e.key != expected[j] {
			t.Fatalf("prev item: actual: %q  expected: %q", e.key, expected[j])
		}
		n += 1
		return true
	})
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	first, err := tree.Min()
	require.NoError(t, err, "min")
	assert.Equal(t, expected[0], first.key, "wrong min")
	last, err := tree.Max()
	require.NoError(t, err, "max")
	assert.Equal(t, expected[len(expected)-1], last.key, "wrong max")

	// delete remainder
	for _, key := range expected {
		tree.Remove(item{key: key})
	}

	if !tree.IsEmpty() {
		logTree(t, tree)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// fetch each item and then remove every other one
func doGet(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newItemTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(dataItem(key))
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	for index, key := range expected {
		e, found := tree.Get(item{key: key})
		if !found {
			t.Fatalf("[%d] key: %q not it tree", index, key)
		}
		if "data:"+key != e.value {
			t.Fatalf("[%d]: expected: %q but found: %q", index, "data:"+key, e.value)
		}
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Remove(item{key: key})
		}
	}

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("after delete: %s", err)
	}

	// check odd elements are all present in order
	s := tree.ToSequence(true)
	for index, key := range expected {
		_, found := tree.Get(item{key: key})
		if 0 == index%2 {
			if found {
				t.Fatalf("[%d] deleted key: %q found", index, key)
			}
			continue
		}
		if !found {
			t.Fatalf("[%d] key: %q not it tree", index, key)
		}
		e, ok := s.At(index >> 1) // 1,3,5, … → 0,1,2, …
		if !ok || e.key != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, e.key)
		}
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newItemTree()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(dataItem(key))
	}

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		tree.Remove(item{key: key})
		if err := tree.Check(); nil != err {
			logTree(t, tree)
			t.Fatalf("inconsistent tree: %s", err)
		}
	}

	// add back the test value
	testKey := "500"
	const testValue = "just testing data: test 500 value"
	tree.Insert(item{key: testKey, value: testValue})

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("inconsistent tree: %s", err)
	}

	doTraverse(t, d)
	doGet(t, d)

	// check that test value is searchable
	tv, found := tree.Get(item{key: testKey})
	if !found {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != tv.value {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.value, testValue)
	}

	// delete the test value, and check it is no longer in the tree
	if !tree.Remove(item{key: testKey}) {
		t.Fatalf("delete of: %q failed", testKey)
	}
	if tv, found := tree.Get(item{key: testKey}); found {
		t.Fatalf("test key not deleted and contains: %q", tv.value)
	}
}

// check that inserted elements can be overwritten
func TestOverwrite(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := newItemTree()
	for _, key := range addList {
		assert.True(t, tree.Insert(dataItem(key)), "insert: %q", key)
	}

	// overwrite a key
	const newData = "new content for 05"
	added := tree.Insert(item{key: "05", value: newData})
	assert.False(t, added, "overwrite added a node")
	assert.Equal(t, len(addList), tree.Count(), "count changed by overwrite")

	if err := tree.Check(); nil != err {
		logTree(t, tree)
		t.Fatalf("add: inconsistent tree: %s", err)
	}

	e, found := tree.Get(item{key: "05"})
	require.True(t, found, "overwritten key missing")
	assert.Equal(t, newData, e.value, "overwrite did not update")

	// delete a node so the overwritten node moves
	tree.Remove(item{key: "06"})
	e, found = tree.Get(item{key: "05"})
	require.True(t, found, "overwritten key missing after delete")
	assert.Equal(t, newData, e.value, "value lost by rebalance")
}

func TestEmptyTree(t *testing.T) {
	tree := newItemTree()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Height(), "height of empty tree")

	_, err := tree.Min()
	assert.Equal(t, fault.ErrEmptyTree, err, "min of empty tree")
	_, err = tree.Max()
	assert.Equal(t, fault.ErrEmptyTree, err, "max of empty tree")

	_, found := tree.Get(item{key: "1"})
	assert.False(t, found, "found item in empty tree")
	assert.False(t, tree.Remove(item{key: "1"}), "removed item from empty tree")
	assert.Equal(t, 0, tree.ToSequence(true).Len(), "sequence of empty tree")
	assert.NoError(t, tree.Check(), "empty tree check")
}

func TestWalkStops(t *testing.T) {
	tree := newItemTree()
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		tree.Insert(dataItem(key))
	}

	seen := []string{}
	tree.Walk(false, func(e item) bool {
		seen = append(seen, e.key)
		return len(seen) < 3
	})
	assert.Equal(t, []string{"e", "d", "c"}, seen, "walk did not stop")
}

func TestPrint(t *testing.T) {
	tree := newItemTree()
	for _, key := range []string{"2", "1", "3"} {
		tree.Insert(dataItem(key))
	}

	var b bytes.Buffer
	depth := tree.Print(&b, false)
	assert.Equal(t, 2, depth, "wrong depth")

	expected := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	assert.Equal(t, expected, b.String(), "wrong drawing")
}
