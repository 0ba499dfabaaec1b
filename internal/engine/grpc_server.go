package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	pb "github.com/acproject/password-manager/pkg/api/plugin/v1"
)

// PluginServer — gRPC-сторона плагина: оркестратор вызывает нас по
// адресу, заявленному при регистрации. Команды идут через тот же
// CommandRouter, что и локальная диагностика.
type PluginServer struct {
	pb.UnimplementedPluginServiceServer

	router    *CommandRouter
	logger    *zap.Logger
	startedAt time.Time

	pluginID func() string // ID выдается агентом уже после старта сервера
	stopFn   func()        // инициирует graceful shutdown процесса
}

func NewPluginServer(router *CommandRouter, pluginID func() string, stopFn func(), logger *zap.Logger) *PluginServer {
	return &PluginServer{
		router:    router,
		logger:    logger.With(zap.String("mod", "grpc_server")),
		startedAt: time.Now(),
		pluginID:  pluginID,
		stopFn:    stopFn,
	}
}

func (s *PluginServer) ExecuteCommand(ctx context.Context, req *pb.CommandRequest) (*pb.CommandResponse, error) {
	if own := s.pluginID(); req.PluginId != "" && req.PluginId != own {
		s.logger.Warn("command addressed to unknown plugin id",
			zap.String("got", req.PluginId), zap.String("own", own))
	}

	res := s.router.Execute(ctx, req.Command, req.Parameters)
	return &pb.CommandResponse{
		Success:      res.Success,
		Result:       res.Result,
		ErrorMessage: res.ErrorMessage,
	}, nil
}

func (s *PluginServer) GetStatus(_ context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	return &pb.StatusResponse{
		Status:  "RUNNING",
		Details: "key management plugin is operational",
		Uptime:  int64(time.Since(s.startedAt).Seconds()),
	}, nil
}

// StopPlugin подтверждает получение и запускает остановку асинхронно,
// чтобы успеть отдать ответ до закрытия listener'а.
func (s *PluginServer) StopPlugin(_ context.Context, req *pb.StopRequest) (*pb.StopResponse, error) {
	s.logger.Info("stop requested by orchestrator", zap.String("plugin_id", req.PluginId))
	if s.stopFn != nil {
		go s.stopFn()
	}
	return &pb.StopResponse{Success: true, Message: "plugin shutting down"}, nil
}
