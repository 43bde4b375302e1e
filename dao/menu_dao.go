// dao/menu_dao.go
package dao

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	campus_errors "github.com/campushub/campus-api/errors"
	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/util"
	helper_util "github.com/campushub/campus-api/util/helper"
)

type MenuDAO struct {
	DB         *sql.DB
	Validation *util.ValidationUtil
}

func NewMenuDAO(db *sql.DB, validation *util.ValidationUtil) *MenuDAO {
	return &MenuDAO{DB: db, Validation: validation}
}

// ReplaceAll atomically replaces the whole menu cache with the given
// batch. Every record is validated inside the transaction; the first
// invalid record aborts the replace and leaves the previous cache
// exactly as it was. Within a batch, later records sharing the
// natural key (cafeteria_id, date, type_nr) overwrite earlier ones.
// Returns the number of records applied.
func (dao *MenuDAO) ReplaceAll(ctx context.Context, menus []model.CafeteriaMenu) (int, error) {
	start := time.Now()

	tx, err := dao.DB.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("Failed to begin menu replace transaction", zap.Error(err))
		return 0, campus_errors.ErrDatabaseOperation
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cafeterias_menus`); err != nil {
		logger.Error("Failed to clear menu cache", zap.Error(err))
		return 0, campus_errors.ErrDatabaseOperation
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO cafeterias_menus
		(cafeteria_id, date, type_short, type_long, type_nr, name)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		logger.Error("Failed to prepare menu insert", zap.Error(err))
		return 0, campus_errors.ErrDatabaseOperation
	}
	defer stmt.Close()

	for _, menu := range menus {
		if err := dao.Validation.ValidateMenu(menu); err != nil {
			logger.Warn("Rejecting menu batch",
				zap.Error(err),
				zap.Int("cafeteriaID", menu.CafeteriaID),
				zap.String("name", menu.Name))
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx,
			menu.CafeteriaID,
			helper_util.FormatDate(menu.Date),
			menu.TypeShort,
			menu.TypeLong,
			menu.TypeNr,
			menu.Name,
		); err != nil {
			logger.Error("Failed to insert menu", zap.Error(err))
			return 0, campus_errors.ErrDatabaseOperation
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Failed to commit menu replace", zap.Error(err))
		return 0, campus_errors.ErrDatabaseOperation
	}

	logger.Info("Menu cache replaced",
		zap.Int("records", len(menus)),
		zap.Duration("duration", time.Since(start)))
	return len(menus), nil
}

// MenuDates returns the distinct dates with cached menus from today
// onward, ascending.
func (dao *MenuDAO) MenuDates(ctx context.Context) ([]string, error) {
	rows, err := dao.DB.QueryContext(ctx, `SELECT DISTINCT date FROM cafeterias_menus
		WHERE date >= date('now','localtime') ORDER BY date`)
	if err != nil {
		logger.Error("Failed to query menu dates", zap.Error(err))
		return nil, campus_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, campus_errors.ErrDatabaseOperation
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, campus_errors.ErrDatabaseOperation
	}
	return dates, nil
}

// MenusFor returns the cached menus for one cafeteria and day,
// ordered the way the menu card displays them: the day's dish first,
// then by type code and ordinal.
func (dao *MenuDAO) MenusFor(ctx context.Context, cafeteriaID int, date string) ([]model.CafeteriaMenu, error) {
	rows, err := dao.DB.QueryContext(ctx, `SELECT id, cafeteria_id, date, type_short, type_long, type_nr, name
		FROM cafeterias_menus WHERE cafeteria_id = ? AND date = ?
		ORDER BY type_short = 'tg' DESC, type_short ASC, type_nr`, cafeteriaID, date)
	if err != nil {
		logger.Error("Failed to query menus",
			zap.Error(err),
			zap.Int("cafeteriaID", cafeteriaID),
			zap.String("date", date))
		return nil, campus_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	var menus []model.CafeteriaMenu
	for rows.Next() {
		var menu model.CafeteriaMenu
		var rawDate string
		if err := rows.Scan(&menu.ID, &menu.CafeteriaID, &rawDate, &menu.TypeShort, &menu.TypeLong, &menu.TypeNr, &menu.Name); err != nil {
			return nil, campus_errors.ErrDatabaseOperation
		}
		day, err := helper_util.ParseDate(rawDate)
		if err != nil {
			return nil, campus_errors.ErrDatabaseOperation
		}
		menu.Date = day
		menus = append(menus, menu)
	}
	if err := rows.Err(); err != nil {
		return nil, campus_errors.ErrDatabaseOperation
	}
	return menus, nil
}

// CountMenus returns the number of cached menu rows.
func (dao *MenuDAO) CountMenus(ctx context.Context) (int, error) {
	var count int
	if err := dao.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cafeterias_menus`).Scan(&count); err != nil {
		logger.Error("Failed to count menus", zap.Error(err))
		return 0, campus_errors.ErrDatabaseOperation
	}
	return count, nil
}

// RemoveCache deletes every cached menu row.
func (dao *MenuDAO) RemoveCache(ctx context.Context) error {
	if _, err := dao.DB.ExecContext(ctx, `DELETE FROM cafeterias_menus`); err != nil {
		logger.Error("Failed to remove menu cache", zap.Error(err))
		return campus_errors.ErrDatabaseOperation
	}
	return nil
}
