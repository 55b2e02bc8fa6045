package packedmatrix

import (
	"strconv"

	"github.com/katalvlaran/hopfield/internal/fsio"
)

// Save writes the packed buffer to path as whitespace-separated
// decimal doubles in strict-upper-triangular row-major order:
// W[1,2], W[1,3], ..., W[1,N], W[2,3], ..., W[N-1,N].
func (m *PackedSymMatrix) Save(path string) error {
	if len(m.buffer) != m.size() {
		return packedErrorf("Save", ErrSizeMismatch)
	}

	tokens := make([]string, len(m.buffer))
	for i, v := range m.buffer {
		tokens[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	if err := fsio.WriteTokens(path, tokens); err != nil {
		return packedErrorf("Save", err)
	}

	return nil
}

// Load reads path into a fresh PackedSymMatrix of order n. The token count
// must equal M=n*(n-1)/2; an empty file is valid only for n in {0,1}.
func Load(path string, n int) (*PackedSymMatrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}

	tokens, err := fsio.ReadTokens(path)
	if err != nil {
		return nil, packedErrorf("Load", err)
	}
	if len(tokens) != m.size() {
		return nil, packedErrorf("Load", ErrSizeMismatch)
	}

	buf := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, convErr := strconv.ParseFloat(tok, 64)
		if convErr != nil {
			return nil, packedErrorf("Load", ErrInvalidValue)
		}
		buf[i] = v
	}
	m.buffer = buf

	return m, nil
}
