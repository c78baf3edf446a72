package minire_test

import (
	"errors"
	"fmt"

	"github.com/coregx/minire"
	"github.com/coregx/minire/syntax"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := minire.Compile(`he+llo`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.IsMatch("heeello"))
	fmt.Println(re.IsMatch("hllo"))
	// Output:
	// true
	// false
}

// ExampleCompile_error demonstrates the diagnostics of an invalid pattern.
func ExampleCompile_error() {
	_, err := minire.Compile("a)")
	fmt.Println(err)
	fmt.Println(errors.Is(err, syntax.ErrUnexpectedToken))
	// Output:
	// Unexpected token ')' (group close) at position 1, expected '(' before ')'
	// true
}

// ExampleRegex_Find demonstrates the leftmost match and its offsets.
func ExampleRegex_Find() {
	re := minire.MustCompile("hel.*")
	m := re.Find("  heloooo")
	fmt.Println(m.Matched, m.Start, m.End, m.Text)
	// Output: true 2 9 heloooo
}

// ExampleRegex_Find_greedy shows that repetitions never give characters back.
func ExampleRegex_Find_greedy() {
	re := minire.MustCompile("a.*b")
	fmt.Println(re.Find("axxb").Matched)
	// Output: false
}

// ExampleRegex_FindAll demonstrates iterating over all matches.
func ExampleRegex_FindAll() {
	re := minire.MustCompile(`\d+`)
	for _, m := range re.FindAll("10 apples, 200 pears", -1) {
		fmt.Println(m.Start, m.Text)
	}
	// Output:
	// 0 10
	// 11 200
}

// ExampleRegex_Split demonstrates splitting on a pattern.
func ExampleRegex_Split() {
	re := minire.MustCompile(`\s*,\s*`)
	fmt.Printf("%q\n", re.Split("a , b,c", -1))
	// Output: ["a" "b" "c"]
}

// ExampleQuoteMeta demonstrates escaping metacharacters.
func ExampleQuoteMeta() {
	fmt.Println(minire.QuoteMeta("1+1=2?"))
	// Output: 1\+1=2\?
}

// ExampleRegex_Strategy demonstrates inspecting the selected search strategy.
func ExampleRegex_Strategy() {
	for _, pattern := range []string{"^abc", "[hH]ello", "hello.*", `\d+`} {
		fmt.Println(pattern, minire.MustCompile(pattern).Strategy())
	}
	// Output:
	// ^abc UseAnchored
	// [hH]ello UseLiteral
	// hello.* UsePrefilter
	// \d+ UseScan
}
