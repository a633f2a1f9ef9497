package script

import (
	"fmt"
	"io"
)

// Dataset is the nested literal the demo constructs. It exists to give the
// fixture visible nesting depth; the demo's output never depends on it.
type Dataset struct {
	Name  string
	Items []Item
}

// Item is one element of a Dataset.
type Item struct {
	ID    int
	Value string
}

// Sample returns the demo's nested literal.
func Sample() Dataset {
	return Dataset{
		Name: "Test",
		Items: []Item{
			{ID: 1, Value: "first"},
			{ID: 2, Value: "second"},
		},
	}
}

// Run writes the demo program's output to w: a greeting, ten numbered lines
// each labelled Even or Odd by parity, then the two closing lines. The
// sequence is fixed; two runs produce identical bytes.
func Run(w io.Writer) error {
	var err error
	emit := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	emit("Hello, World!\n")

	for i := 0; i < 10; i++ {
		emit("Number: %d\n", i)
		if i%2 == 0 {
			emit("Even\n")
		} else {
			emit("Odd\n")
		}
	}

	_ = Sample() // built for nesting depth only, never read

	emit("This is true\n")
	emit("This will print\n")
	return err
}
