package agent

import "context"

// RegistrationRequest — все, что оркестратору нужно знать о плагине,
// включая адрес обратного вызова.
type RegistrationRequest struct {
	Name        string
	Version     string
	Type        string
	Description string
	Host        string
	Port        int32
}

// RegistrationReply — ответ оркестратора. Message предназначен только
// для логов, решения по нему не принимаются.
type RegistrationReply struct {
	PluginID string
	Success  bool
	Message  string
}

// OrchestratorClient — канал до оркестратора. Все вызовы ограничены
// по времени контекстом; ошибки транспорта и явные отказы равнозначны
// для вызывающего (попытка не удалась).
type OrchestratorClient interface {
	Register(ctx context.Context, req RegistrationRequest) (*RegistrationReply, error)
	Heartbeat(ctx context.Context, pluginID, statusInfo string) error
	NotifyStop(ctx context.Context, pluginID string) error
	Close() error
}
