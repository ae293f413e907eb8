package models

import "github.com/m04kA/SMC-ConsultationService/internal/domain"

// UpdateSettingRequest новое значение настройки
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// SettingsResponse плоская карта ключ-значение
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

// SettingResponse одна настройка после обновления
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FromDomainSettings конвертирует список настроек в карту
func FromDomainSettings(settings []*domain.Setting) *SettingsResponse {
	resp := &SettingsResponse{Settings: make(map[string]string, len(settings))}
	for _, s := range settings {
		resp.Settings[s.Key] = s.Value
	}
	return resp
}

// FromDomainSetting конвертирует настройку в DTO
func FromDomainSetting(s *domain.Setting) *SettingResponse {
	if s == nil {
		return nil
	}
	return &SettingResponse{Key: s.Key, Value: s.Value}
}
