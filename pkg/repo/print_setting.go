package repo

import (
	"context"
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
)

func (r *RepoPG) GetPrintSetting(ctx context.Context, kind string, tx *gorm.DB) (rs model.PrintSetting, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetPrintSetting")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("kind = ?", kind).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetPrintSetting - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get print setting in GetPrintSetting - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

// UpsertPrintSetting replaces the layout document for the kind, creating the
// row on first write.
func (r *RepoPG) UpsertPrintSetting(ctx context.Context, setting *model.PrintSetting, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.UpsertPrintSetting")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"layout", "updater_id", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		log.WithError(err).Error("error_500: upsert print setting in UpsertPrintSetting - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}
