package matrix

import (
	"io"
	"strconv"
	"strings"
)

// String formats m one row per line, elements separated by a single space.
// The output is meant for humans and carries no round-trip guarantee.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the String form of m to w.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	bits := bitSize[T]()
	buf := make([]byte, 0, 16*m.cols+1)
	var total int64
	for i := 0; i < m.rows; i++ {
		buf = buf[:0]
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, float64(m.data[i*m.cols+j]), 'g', -1, bits)
		}
		buf = append(buf, '\n')
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
