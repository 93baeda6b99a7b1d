package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	onColor    = color.New(color.FgGreen, color.Bold)
	offColor   = color.New(color.Faint)
	labelColor = color.New(color.FgCyan)
)

func colorBits(bits string) string {
	var sb strings.Builder
	for _, c := range bits {
		if c == '1' {
			sb.WriteString(onColor.Sprint("1"))
		} else {
			sb.WriteString(offColor.Sprint("0"))
		}
	}
	return sb.String()
}

func activeIndices(activity []bool) []int {
	out := []int{}
	for i, on := range activity {
		if on {
			out = append(out, i)
		}
	}
	return out
}

func render(w io.Writer, s session) {
	label := func(name string) string { return labelColor.Sprintf("%-9s", name+":") }

	fmt.Fprintf(w, "%s %d\n", label("width"), s.InMemorySize())
	fmt.Fprintf(w, "%s %s\n", label("value"), s.ValueString())
	fmt.Fprintf(w, "%s %s\n", label("binary"), colorBits(s.String()))
	fmt.Fprintf(w, "%s %v (%d)\n", label("on"), s.OnBits().ToArray(), s.Count())
	fmt.Fprintf(w, "%s %v\n", label("activity"), activeIndices(s.AllBits()))
}
