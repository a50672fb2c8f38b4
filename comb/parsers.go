package comb

import (
	"sync"

	"github.com/signadot/pbx/token"
)

// Tag matches any single token with tag t and yields its text.
func Tag(t token.Tag) Parser[string] {
	return func(s *Stream, pos int) (string, int, bool) {
		if s.err != nil {
			return "", pos, false
		}
		tok := s.At(pos)
		if tok == nil || tok.Tag != t {
			s.fail(pos)
			return "", pos, false
		}
		return tok.Text, pos + 1, true
	}
}

// Reserved matches the single reserved token text.
func Reserved(text string) Parser[string] {
	return func(s *Stream, pos int) (string, int, bool) {
		if s.err != nil {
			return "", pos, false
		}
		tok := s.At(pos)
		if tok == nil || !tok.Is(text) {
			s.fail(pos)
			return "", pos, false
		}
		return text, pos + 1, true
	}
}

// AnyString matches a single bareword or quoted string token.
func AnyString() Parser[string] {
	return Tag(token.String)
}

// Concat matches a then b.
func Concat[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(s *Stream, pos int) (Pair[A, B], int, bool) {
		var res Pair[A, B]
		l, next, ok := a(s, pos)
		if !ok {
			return res, pos, false
		}
		r, next, ok := b(s, next)
		if !ok {
			return res, pos, false
		}
		res.Left, res.Right = l, r
		return res, next, true
	}
}

// Left matches a then b and keeps the result of a.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Concat(a, b), func(p Pair[A, B]) A { return p.Left })
}

// Right matches a then b and keeps the result of b.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Concat(a, b), func(p Pair[A, B]) B { return p.Right })
}

// Repeat matches one or more p separated by sep.  Each separator yields the
// function which folds the next item into the accumulated result, from the
// left.  Repeat stops before a separator that is not followed by an item, so
// an optional trailing separator can be matched afterwards.
func Repeat[T any](p Parser[T], sep Parser[func(T, T) T]) Parser[T] {
	return func(s *Stream, pos int) (T, int, bool) {
		acc, next, ok := p(s, pos)
		if !ok {
			return acc, pos, false
		}
		for {
			f, sn, ok := sep(s, next)
			if !ok {
				break
			}
			item, in, ok := p(s, sn)
			if !ok {
				break
			}
			acc = f(acc, item)
			next = in
		}
		return acc, next, true
	}
}

// Alternate tries each parser in order at the same position and yields the
// first match.
func Alternate[T any](ps ...Parser[T]) Parser[T] {
	return func(s *Stream, pos int) (T, int, bool) {
		for _, p := range ps {
			res, next, ok := p(s, pos)
			if ok {
				return res, next, true
			}
		}
		var zero T
		return zero, pos, false
	}
}

// Map transforms the result of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s *Stream, pos int) (B, int, bool) {
		a, next, ok := p(s, pos)
		if !ok {
			var zero B
			return zero, pos, false
		}
		return f(a), next, true
	}
}

// Optional matches p or nothing.  When p fails the zero value is yielded at
// the unchanged position.
func Optional[T any](p Parser[T]) Parser[T] {
	return func(s *Stream, pos int) (T, int, bool) {
		res, next, ok := p(s, pos)
		if !ok {
			var zero T
			if s.err != nil {
				return zero, pos, false
			}
			return zero, pos, true
		}
		return res, next, true
	}
}

// Lazy defers building a parser until first use, allowing recursive
// grammars.  The built parser is kept.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(s *Stream, pos int) (T, int, bool) {
		once.Do(func() { p = build() })
		return p(s, pos)
	}
}

// Phrase matches p and requires that it consume the whole stream.
func Phrase[T any](p Parser[T]) Parser[T] {
	return func(s *Stream, pos int) (T, int, bool) {
		res, next, ok := p(s, pos)
		if !ok {
			return res, pos, false
		}
		if next != len(s.Toks) {
			s.fail(next)
			var zero T
			return zero, pos, false
		}
		return res, next, true
	}
}

// Limit fails with ErrTooDeep once more than max invocations of p are
// active on the stream at the same time.
func Limit[T any](p Parser[T], max int) Parser[T] {
	return func(s *Stream, pos int) (T, int, bool) {
		if s.depth >= max {
			if s.err == nil {
				s.err = ErrTooDeep
				s.far = pos
			}
			var zero T
			return zero, pos, false
		}
		s.depth++
		defer func() { s.depth-- }()
		return p(s, pos)
	}
}
