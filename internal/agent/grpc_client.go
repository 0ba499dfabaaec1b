package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/acproject/password-manager/internal/domain"
	pb "github.com/acproject/password-manager/pkg/api/plugin/v1"
)

const rpcTimeout = 10 * time.Second

// GRPCClient — транспорт до оркестратора. Регистрация и heartbeat идут
// через предохранитель: когда оркестратор лежит, мы не долбим его
// каждые 5 секунд, а быстро фейлим тик и ждем восстановления.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.PluginServiceClient
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger

	// Вызывается при переключении предохранителя (для метрики состояния)
	onStateChange func(open bool)
}

func NewGRPCClient(addr string, logger *zap.Logger, onStateChange func(open bool)) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("orchestrator client: connect %s: %w", addr, err)
	}

	c := &GRPCClient{
		conn:          conn,
		client:        pb.NewPluginServiceClient(conn),
		logger:        logger.With(zap.String("mod", "orchestrator_client")),
		onStateChange: onStateChange,
	}
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "orchestrator",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second, // Время, через которое CB попробует "закрыться"
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				zap.String("from", from.String()), zap.String("to", to.String()))
			if c.onStateChange != nil {
				c.onStateChange(to == gobreaker.StateOpen)
			}
		},
	})
	return c, nil
}

func (c *GRPCClient) Register(ctx context.Context, req RegistrationRequest) (*RegistrationReply, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		rpcCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
		defer cancel()
		return c.client.RegisterPlugin(rpcCtx, &pb.PluginRegistration{
			Name:        req.Name,
			Version:     req.Version,
			Type:        req.Type,
			Description: req.Description,
			Host:        req.Host,
			Port:        req.Port,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("register plugin: %w: %v", domain.ErrTransport, err)
	}

	resp := result.(*pb.RegistrationResponse)
	return &RegistrationReply{
		PluginID: resp.PluginId,
		Success:  resp.Success,
		Message:  resp.Message,
	}, nil
}

func (c *GRPCClient) Heartbeat(ctx context.Context, pluginID, statusInfo string) error {
	result, err := c.cb.Execute(func() (interface{}, error) {
		rpcCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
		defer cancel()
		return c.client.Heartbeat(rpcCtx, &pb.HeartbeatRequest{
			PluginId:   pluginID,
			StatusInfo: statusInfo,
		})
	})
	if err != nil {
		return fmt.Errorf("heartbeat: %w: %v", domain.ErrTransport, err)
	}
	if !result.(*pb.HeartbeatResponse).Received {
		return fmt.Errorf("heartbeat: orchestrator did not acknowledge: %w", domain.ErrTransport)
	}
	return nil
}

// NotifyStop — прощальный вызов, мимо предохранителя: это последняя
// попытка, и открытый CB не должен ее глушить.
func (c *GRPCClient) NotifyStop(ctx context.Context, pluginID string) error {
	rpcCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()
	if _, err := c.client.StopPlugin(rpcCtx, &pb.StopRequest{PluginId: pluginID}); err != nil {
		return fmt.Errorf("notify stop: %w: %v", domain.ErrTransport, err)
	}
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
