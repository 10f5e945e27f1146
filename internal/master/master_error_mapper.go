package master

import (
	"errors"

	"asdm-hrms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 57P01: admin shutdown, 53300: too many connections
		if pgErr.Code == "57P01" || pgErr.Code == "53300" {
			return apperror.Wrap(err,
				apperror.CodeServiceUnavailable,
				"Master data store is unavailable",
				503,
			)
		}
	}

	return err
}
