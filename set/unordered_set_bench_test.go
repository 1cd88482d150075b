package set

import (
	"strconv"
	"testing"
)

func BenchmarkUnorderedSet_Insert(b *testing.B) {
	s := NewUnorderedSet()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(i)
	}
}

func BenchmarkUnorderedSet_InsertIfAbsent(b *testing.B) {
	s := NewUnorderedSet()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InsertIfAbsent(i)
	}
}

func BenchmarkUnorderedSet_Contain(b *testing.B) {
	s := NewUnorderedSet()
	for i := 0; i < 10000000; i++ {
		s.Insert(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contain(i % 10000000)
	}
}

func BenchmarkUnorderedSet_Remove(b *testing.B) {
	s := NewUnorderedSet()
	for i := 0; i < b.N; i++ {
		s.Insert(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Remove(i)
	}
}

func BenchmarkUnorderedSet_Items(b *testing.B) {
	s := NewUnorderedSet()
	for i := 0; i < 100000; i++ {
		s.Insert(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Items()
	}
}

func BenchmarkUnorderedSet_StringKeys(b *testing.B) {
	s := NewUnorderedSet()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(strconv.Itoa(i))
	}
}
