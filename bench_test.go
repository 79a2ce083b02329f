package trie

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/stretchr/testify/require"
)

func benchmarkStdMapInsert(factor int, b *testing.B) {
	m := map[string]int{}
	for n := 0; n < factor*b.N; n++ {
		m[strconv.Itoa(n)] = n
	}
}

func BenchmarkStdMapInsert1(b *testing.B)    { benchmarkStdMapInsert(1, b) }
func BenchmarkStdMapInsert10(b *testing.B)   { benchmarkStdMapInsert(10, b) }
func BenchmarkStdMapInsert100(b *testing.B)  { benchmarkStdMapInsert(100, b) }
func BenchmarkStdMapInsert1k(b *testing.B)   { benchmarkStdMapInsert(1_000, b) }
func BenchmarkStdMapInsert10k(b *testing.B)  { benchmarkStdMapInsert(10_000, b) }
func BenchmarkStdMapInsert100k(b *testing.B) { benchmarkStdMapInsert(100_000, b) }

func benchmarkTriePut(factor int, b *testing.B) {
	t := Trie{}
	for n := 0; n < factor*b.N; n++ {
		t = Put(t, strconv.Itoa(n), n)
	}
}

func BenchmarkTriePut1(b *testing.B)    { benchmarkTriePut(1, b) }
func BenchmarkTriePut10(b *testing.B)   { benchmarkTriePut(10, b) }
func BenchmarkTriePut100(b *testing.B)  { benchmarkTriePut(100, b) }
func BenchmarkTriePut1k(b *testing.B)   { benchmarkTriePut(1_000, b) }
func BenchmarkTriePut10k(b *testing.B)  { benchmarkTriePut(10_000, b) }
func BenchmarkTriePut100k(b *testing.B) { benchmarkTriePut(100_000, b) }

func benchmarkTrieGet(factor int, b *testing.B) {
	t := Trie{}
	b.StopTimer()
	for n := 0; n < factor*b.N; n++ {
		t = Put(t, strconv.Itoa(n), n)
	}
	b.StartTimer()
	for n := 0; n < factor*b.N; n++ {
		Get[int](t, strconv.Itoa(n))
	}
}

func BenchmarkTrieGet1(b *testing.B)    { benchmarkTrieGet(1, b) }
func BenchmarkTrieGet10(b *testing.B)   { benchmarkTrieGet(10, b) }
func BenchmarkTrieGet100(b *testing.B)  { benchmarkTrieGet(100, b) }
func BenchmarkTrieGet1k(b *testing.B)   { benchmarkTrieGet(1_000, b) }
func BenchmarkTrieGet10k(b *testing.B)  { benchmarkTrieGet(10_000, b) }
func BenchmarkTrieGet100k(b *testing.B) { benchmarkTrieGet(100_000, b) }

func benchmarkTrieDigest(factor int, cache DigestCache, b *testing.B) {
	t := New(&Options{DigestCache: cache})
	b.StopTimer()
	for n := 0; n < factor; n++ {
		t = Put(t, strconv.Itoa(n), n)
	}
	b.StartTimer()
	for n := 0; n < b.N; n++ {
		t = Put(t, strconv.Itoa(n%factor), n)
		_, err := t.Digest()
		require.NoError(b, err)
	}
}

func BenchmarkTrieDigest1k(b *testing.B)       { benchmarkTrieDigest(1_000, nil, b) }
func BenchmarkTrieDigestCached1k(b *testing.B) { benchmarkTrieDigest(1_000, NewDigestCache(10_000), b) }

func BenchmarkExerciser(b *testing.B) {
	parameters := gopter.DefaultTestParametersWithSeed(1593228262585360000)
	parameters.MaxSize = 512
	parameters.MinSuccessfulTests = b.N
	properties := gopter.NewProperties(parameters)
	properties.Property("trie exerciser", commands.Prop(trieCommands))
	out := bytes.NewBuffer(nil)
	reporter := gopter.NewFormatedReporter(false, 98, out)
	require.True(b, properties.Run(reporter))
}
