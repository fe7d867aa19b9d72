package politics

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/repos/store"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/dbctx"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type AccomplishedMLARepo interface {
	store.Repo[politics.AccomplishedMLA]
	GetCurrentByAssemblyID(dbc dbctx.Context, assemblyID uuid.UUID) (*politics.AccomplishedMLA, error)
	CountCurrentByAssemblyID(dbc dbctx.Context, assemblyID uuid.UUID) (int64, error)
	ClearCurrent(dbc dbctx.Context, assemblyID, keepID uuid.UUID, now time.Time) (int64, error)
	LockAssembly(dbc dbctx.Context, assemblyID uuid.UUID) (bool, error)
}

type accomplishedMLARepo struct {
	*store.Store[politics.AccomplishedMLA]
}

func NewAccomplishedMLARepo(db *gorm.DB, baseLog *logger.Logger) AccomplishedMLARepo {
	return &accomplishedMLARepo{Store: store.New[politics.AccomplishedMLA](db, baseLog.With("repo", "AccomplishedMLARepo"))}
}

func (r *accomplishedMLARepo) GetCurrentByAssemblyID(dbc dbctx.Context, assemblyID uuid.UUID) (*politics.AccomplishedMLA, error) {
	if assemblyID == uuid.Nil {
		return nil, nil
	}
	return r.FindOne(dbc, map[string]interface{}{"assembly_id": assemblyID, "is_current": true}, "Assembly", "Party")
}

func (r *accomplishedMLARepo) CountCurrentByAssemblyID(dbc dbctx.Context, assemblyID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB(dbc).
		Model(&politics.AccomplishedMLA{}).
		Where("assembly_id = ? AND is_current = ?", assemblyID, true).
		Count(&n).Error
	return n, err
}

// ClearCurrent unsets is_current on every MLA of the assembly except keepID.
func (r *accomplishedMLARepo) ClearCurrent(dbc dbctx.Context, assemblyID, keepID uuid.UUID, now time.Time) (int64, error) {
	if assemblyID == uuid.Nil {
		return 0, nil
	}
	res := r.DB(dbc).
		Model(&politics.AccomplishedMLA{}).
		Where("assembly_id = ? AND is_current = ? AND id <> ?", assemblyID, true, keepID).
		Updates(map[string]interface{}{"is_current": false, "updated_at": now})
	return res.RowsAffected, res.Error
}

// LockAssembly takes a row lock on the assembly for the rest of the transaction.
// Writers that flip is_current for the same assembly queue behind it. SQLite has
// no row locks; the clause is dropped there and its single writer serializes instead.
func (r *accomplishedMLARepo) LockAssembly(dbc dbctx.Context, assemblyID uuid.UUID) (bool, error) {
	if assemblyID == uuid.Nil {
		return false, nil
	}
	var ids []string
	err := r.DB(dbc).
		Model(&geo.Assembly{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", assemblyID).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}
