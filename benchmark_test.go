package xdf

import "testing"

const benchComment = `
	Gets or sets the display name.
	<para>The name is resolved against <see cref="T:System.String"/> and
	falls back to <paramref name="name"/> when the lookup fails.</para>
	<para>See also <seealso cref="M:My.Type.#ctor(System.Int32)"/>.</para>
`

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Format(benchComment); err != nil {
			b.Fatalf("format: %v", err)
		}
	}
}

func BenchmarkFormatRuns(b *testing.B) {
	b.ReportAllocs()
	resolve := func(id string) (Symbol, bool) {
		return fakeSymbol{name: "String"}, true
	}
	render := func(sym Symbol, format DisplayFormat, pos *Position) []Run {
		return []Run{ClassifiedRun(sym.Name(), ClassTypeName)}
	}
	for i := 0; i < b.N; i++ {
		if _, err := FormatRuns(benchComment, WithResolver(resolve), WithRenderer(render)); err != nil {
			b.Fatalf("format runs: %v", err)
		}
	}
}
