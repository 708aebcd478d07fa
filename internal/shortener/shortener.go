package shortener

import "github.com/sqids/sqids-go"

const minSlugLength = 6

// Shortener derives short, URL-safe slugs from sequence-assigned link IDs.
type Shortener struct {
	sqids *sqids.Sqids
}

func New() (*Shortener, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minSlugLength,
	})
	if err != nil {
		return nil, err
	}
	return &Shortener{sqids: s}, nil
}

func (s *Shortener) Generate(id uint) (string, error) {
	return s.sqids.Encode([]uint64{uint64(id)})
}
