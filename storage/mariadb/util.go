package mariadb

import (
	"iter"

	"github.com/jmoiron/sqlx"
)

// SelectIter is like sqlx.Select but returns an iterator instead, param is
// used for the named parameters in query
func SelectIter[T any](h handle, query string, param any) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		query, args, err := sqlx.Named(query, param)
		if err != nil {
			yield(*new(T), err)
			return
		}

		rows, err := h.Queryx(h.Rebind(query), args...)
		if err != nil {
			yield(*new(T), err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dest T

			err = rows.StructScan(&dest)
			if !yield(dest, err) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(*new(T), err)
			return
		}
	}
}

// Collect collects all the values in seq in a slice, if an error
// is encountered it returns (nil, err) instead.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var res []T
	for t, err := range seq {
		if err != nil {
			return nil, err
		}

		res = append(res, t)
	}
	return res, nil
}
