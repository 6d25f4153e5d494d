package store

import (
	"fmt"

	"github.com/EmanueleCodes/animlab/internal/engine"
)

// Samples is a flattened recording of emitted frames. Columns are
// "<element>.<property>" in a fixed order so every row lines up.
type Samples struct {
	Columns  []string
	Times    []float64
	Rows     [][]string
	elements []string
	props    []string
}

func NewSamples(elements, props []string) *Samples {
	columns := make([]string, 0, len(elements)*len(props))
	for _, el := range elements {
		for _, p := range props {
			columns = append(columns, fmt.Sprintf("%s.%s", el, p))
		}
	}
	return &Samples{
		Columns:  columns,
		elements: elements,
		props:    props,
	}
}

// Add appends one frame as a row. Missing entries record as empty cells.
func (s *Samples) Add(f engine.Frame) {
	row := make([]string, 0, len(s.Columns))
	for _, el := range s.elements {
		batch := f.Elements[el]
		for _, p := range s.props {
			v, ok := batch[p]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, v.String())
		}
	}
	s.Times = append(s.Times, f.Time)
	s.Rows = append(s.Rows, row)
}

func (s *Samples) Len() int {
	return len(s.Times)
}
