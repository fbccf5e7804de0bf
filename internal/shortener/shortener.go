// Package shortener turns database IDs into short codes. Sqids keeps
// codes opaque and collision-free without a retry loop.
package shortener

import "github.com/sqids/sqids-go"

const minCodeLength = 6

type Shortener struct {
	sqids *sqids.Sqids
}

func New() (*Shortener, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minCodeLength,
	})
	if err != nil {
		return nil, err
	}
	return &Shortener{sqids: s}, nil
}

func (s *Shortener) Generate(id uint) (string, error) {
	return s.sqids.Encode([]uint64{uint64(id)})
}
