package setting

import (
	"context"
	"strings"

	"github.com/muhammadheryan/warung-order/constant"
	"github.com/muhammadheryan/warung-order/model"
	settingrepo "github.com/muhammadheryan/warung-order/repository/setting"
	"github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/muhammadheryan/warung-order/utils/logger"
	"go.uber.org/zap"
)

// separators people commonly type inside phone numbers
var phoneSeparators = strings.NewReplacer("-", "", "(", "", ")", "", ".", "")

type SettingApp interface {
	ConfigureWhatsappNumber(ctx context.Context, raw string) (*model.WhatsappConfigResponse, error)
	GetWhatsappConfig(ctx context.Context) (*model.WhatsappConfigResponse, error)
	GetSetting(ctx context.Context, key string) (*model.Setting, error)
	ListSettings(ctx context.Context) (map[string]string, error)
	UpsertSetting(ctx context.Context, key, value string) (*model.Setting, error)
}

type settingAppImpl struct {
	settingRepo settingrepo.SettingRepository
}

func NewSettingApp(settingRepo settingrepo.SettingRepository) SettingApp {
	return &settingAppImpl{settingRepo: settingRepo}
}

// NormalizeWhatsappNumber drops whitespace, separators and one leading "+",
// e.g. "+62 812-3456-7890" becomes "6281234567890". A "+" anywhere else is kept.
func NormalizeWhatsappNumber(raw string) string {
	number := phoneSeparators.Replace(strings.Join(strings.Fields(raw), ""))
	return strings.TrimPrefix(number, "+")
}

func (s *settingAppImpl) ConfigureWhatsappNumber(ctx context.Context, raw string) (*model.WhatsappConfigResponse, error) {
	number := NormalizeWhatsappNumber(raw)
	if !constant.WhatsappNumberPattern.MatchString(number) {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, constant.SettingKeyWhatsappNumber, constant.WhatsappNumberFormat)
	}

	if err := s.settingRepo.Upsert(ctx, constant.SettingKeyWhatsappNumber, number); err != nil {
		logger.Error("[ConfigureWhatsappNumber] error settingRepo.Upsert", zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	logger.Info("[ConfigureWhatsappNumber] whatsapp number updated", zap.String("whatsapp_number", number))
	return &model.WhatsappConfigResponse{Configured: true, WhatsappNumber: number}, nil
}

func (s *settingAppImpl) GetWhatsappConfig(ctx context.Context) (*model.WhatsappConfigResponse, error) {
	setting, err := s.settingRepo.Get(ctx, constant.SettingKeyWhatsappNumber)
	if err != nil {
		logger.Error("[GetWhatsappConfig] error settingRepo.Get", zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if setting == nil || setting.Value == "" {
		return &model.WhatsappConfigResponse{Configured: false}, nil
	}
	return &model.WhatsappConfigResponse{Configured: true, WhatsappNumber: setting.Value}, nil
}

func (s *settingAppImpl) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		logger.Error("[GetSetting] error settingRepo.Get", zap.String("key", key), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if setting == nil {
		return nil, errors.SetFieldError(constant.ErrNotFound, "key", key)
	}
	return setting, nil
}

func (s *settingAppImpl) ListSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		logger.Error("[ListSettings] error settingRepo.List", zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}

	result := make(map[string]string, len(settings))
	for _, st := range settings {
		result[st.Key] = st.Value
	}
	return result, nil
}

func (s *settingAppImpl) UpsertSetting(ctx context.Context, key, value string) (*model.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "key", "is required")
	}

	if key == constant.SettingKeyWhatsappNumber {
		res, err := s.ConfigureWhatsappNumber(ctx, value)
		if err != nil {
			return nil, err
		}
		return &model.Setting{Key: key, Value: res.WhatsappNumber}, nil
	}

	if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
		logger.Error("[UpsertSetting] error settingRepo.Upsert", zap.String("key", key), zap.Error(err))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	return &model.Setting{Key: key, Value: value}, nil
}
