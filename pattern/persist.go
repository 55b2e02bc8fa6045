package pattern

import (
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/hopfield/internal/fsio"
)

// Save writes p as a plain-text, whitespace-separated file of ASCII "1"/"-1"
// tokens at dir/name.txt, asserting Size()==n before writing.
func (p *Pattern) Save(dir, name string, n int) error {
	if len(p.values) != n {
		return patternErrorf("Save", ErrSizeMismatch)
	}

	tokens := make([]string, len(p.values))
	for i, v := range p.values {
		tokens[i] = strconv.Itoa(int(v))
	}

	path := filepath.Join(dir, name+".txt")
	if err := fsio.WriteTokens(path, tokens); err != nil {
		return patternErrorf("Save", err)
	}

	return nil
}

// Load reads dir/name.txt and returns a full Pattern whose token count must
// equal n (ErrSizeMismatch otherwise). Each token must parse as a literal
// "1", "+1" or "-1" (ErrInvalidValue otherwise).
func Load(dir, name string, n int) (*Pattern, error) {
	path := filepath.Join(dir, name+".txt")
	tokens, err := fsio.ReadTokens(path)
	if err != nil {
		return nil, patternErrorf("Load", err)
	}
	if len(tokens) != n {
		return nil, patternErrorf("Load", ErrSizeMismatch)
	}

	p := New(n)
	for _, tok := range tokens {
		v, convErr := strconv.Atoi(tok)
		if convErr != nil || (v != 1 && v != -1) {
			return nil, patternErrorf("Load", ErrInvalidValue)
		}
		if err := p.Append(v); err != nil {
			return nil, patternErrorf("Load", err)
		}
	}

	return p, nil
}
