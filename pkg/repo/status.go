package repo

import (
	"context"
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
)

func (r *RepoPG) GetListStatus(ctx context.Context, tx *gorm.DB) (rs []model.Status, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetListStatus")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("is_active = ?", true).Order("code asc").Find(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: list statuses in GetListStatus - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}
