package setting_test

import (
	"context"
	"errors"
	"testing"

	appsetting "github.com/muhammadheryan/warung-order/application/setting"
	"github.com/muhammadheryan/warung-order/constant"
	settingmocks "github.com/muhammadheryan/warung-order/mocks/repository/setting"
	"github.com/muhammadheryan/warung-order/model"
	cerr "github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWhatsappNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "6281234567890", want: "6281234567890"},
		{raw: "+62 812-3456-7890", want: "6281234567890"},
		{raw: " (62) 812.3456.7890 ", want: "6281234567890"},
		{raw: "62\t812 3456\n7890", want: "6281234567890"},
		{raw: "62+81234567890", want: "62+81234567890"},
		{raw: "++6281234567890", want: "+6281234567890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, appsetting.NormalizeWhatsappNumber(tt.raw), tt.raw)
	}
}

func TestSettingApp_ConfigureWhatsappNumber(t *testing.T) {
	type fields struct {
		settingRepo *settingmocks.SettingRepository
	}
	tests := []struct {
		name     string
		fields   fields
		raw      string
		mockCall func(f fields)
		want     string
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:   "success: formatted number is normalized before saving",
			fields: fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:    "+62 812-3456-7890",
			mockCall: func(f fields) {
				f.settingRepo.On("Upsert", mock.Anything, constant.SettingKeyWhatsappNumber, "6281234567890").Return(nil).Once()
			},
			want: "6281234567890",
		},
		{
			name:   "success: shortest accepted number",
			fields: fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:    "6212345678",
			mockCall: func(f fields) {
				f.settingRepo.On("Upsert", mock.Anything, constant.SettingKeyWhatsappNumber, "6212345678").Return(nil).Once()
			},
			want: "6212345678",
		},
		{
			name:    "error: local prefix is rejected",
			fields:  fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:     "081234567890",
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name:    "error: too short",
			fields:  fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:     "621234567",
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name:    "error: too long",
			fields:  fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:     "62123456789012345",
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name:    "error: letters",
			fields:  fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:     "62812abc7890",
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name:    "error: plus sign inside the number",
			fields:  fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:     "62+81234567890",
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name:    "error: empty",
			fields:  fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:     "   ",
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name:   "error: repository Upsert fails",
			fields: fields{settingRepo: settingmocks.NewSettingRepository(t)},
			raw:    "6281234567890",
			mockCall: func(f fields) {
				f.settingRepo.On("Upsert", mock.Anything, constant.SettingKeyWhatsappNumber, "6281234567890").Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsetting.NewSettingApp(tt.fields.settingRepo)

			got, err := app.ConfigureWhatsappNumber(context.Background(), tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				ce, ok := cerr.As(err)
				require.True(t, ok)
				assert.Equal(t, tt.errType, ce.ErrorType())
				if tt.errType == constant.ErrInvalidRequest {
					assert.Equal(t, constant.SettingKeyWhatsappNumber, ce.Field())
					assert.Equal(t, "Must start with 62 followed by 8-15 digits", ce.Detail())
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Configured)
			assert.Equal(t, tt.want, got.WhatsappNumber)
		})
	}
}

func TestSettingApp_GetWhatsappConfig(t *testing.T) {
	tests := []struct {
		name    string
		setting *model.Setting
		repoErr error
		want    *model.WhatsappConfigResponse
		wantErr bool
	}{
		{
			name:    "configured",
			setting: &model.Setting{Key: constant.SettingKeyWhatsappNumber, Value: "6281234567890"},
			want:    &model.WhatsappConfigResponse{Configured: true, WhatsappNumber: "6281234567890"},
		},
		{
			name: "never configured",
			want: &model.WhatsappConfigResponse{Configured: false},
		},
		{
			name:    "empty value",
			setting: &model.Setting{Key: constant.SettingKeyWhatsappNumber},
			want:    &model.WhatsappConfigResponse{Configured: false},
		},
		{
			name:    "repository error",
			repoErr: errors.New("db error"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			settingRepo := settingmocks.NewSettingRepository(t)
			settingRepo.On("Get", mock.Anything, constant.SettingKeyWhatsappNumber).Return(tt.setting, tt.repoErr).Once()

			got, err := appsetting.NewSettingApp(settingRepo).GetWhatsappConfig(context.Background())
			if tt.wantErr {
				assert.True(t, cerr.Is(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingApp_GetSetting(t *testing.T) {
	settingRepo := settingmocks.NewSettingRepository(t)
	settingRepo.On("Get", mock.Anything, "store_name").Return(&model.Setting{Key: "store_name", Value: "Warung Bu Sri"}, nil).Once()
	settingRepo.On("Get", mock.Anything, "missing").Return(nil, nil).Once()
	app := appsetting.NewSettingApp(settingRepo)

	got, err := app.GetSetting(context.Background(), "store_name")
	require.NoError(t, err)
	assert.Equal(t, "Warung Bu Sri", got.Value)

	_, err = app.GetSetting(context.Background(), "missing")
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}

func TestSettingApp_ListSettings(t *testing.T) {
	settingRepo := settingmocks.NewSettingRepository(t)
	settingRepo.On("List", mock.Anything).Return([]model.Setting{
		{Key: "store_name", Value: "Warung Bu Sri"},
		{Key: constant.SettingKeyWhatsappNumber, Value: "6281234567890"},
	}, nil).Once()

	got, err := appsetting.NewSettingApp(settingRepo).ListSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"store_name":                      "Warung Bu Sri",
		constant.SettingKeyWhatsappNumber: "6281234567890",
	}, got)
}

func TestSettingApp_UpsertSetting(t *testing.T) {
	t.Run("plain key is stored as is", func(t *testing.T) {
		settingRepo := settingmocks.NewSettingRepository(t)
		settingRepo.On("Upsert", mock.Anything, "store_name", "Warung Bu Sri").Return(nil).Once()

		got, err := appsetting.NewSettingApp(settingRepo).UpsertSetting(context.Background(), "store_name", "Warung Bu Sri")
		require.NoError(t, err)
		assert.Equal(t, &model.Setting{Key: "store_name", Value: "Warung Bu Sri"}, got)
	})

	t.Run("whatsapp key goes through number validation", func(t *testing.T) {
		settingRepo := settingmocks.NewSettingRepository(t)
		settingRepo.On("Upsert", mock.Anything, constant.SettingKeyWhatsappNumber, "6281234567890").Return(nil).Once()
		app := appsetting.NewSettingApp(settingRepo)

		got, err := app.UpsertSetting(context.Background(), constant.SettingKeyWhatsappNumber, "+62 812-3456-7890")
		require.NoError(t, err)
		assert.Equal(t, "6281234567890", got.Value)

		_, err = app.UpsertSetting(context.Background(), constant.SettingKeyWhatsappNumber, "0812")
		assert.True(t, cerr.Is(err, constant.ErrInvalidRequest))
	})

	t.Run("blank key is rejected", func(t *testing.T) {
		_, err := appsetting.NewSettingApp(settingmocks.NewSettingRepository(t)).UpsertSetting(context.Background(), " ", "x")
		assert.True(t, cerr.Is(err, constant.ErrInvalidRequest))
	})
}
