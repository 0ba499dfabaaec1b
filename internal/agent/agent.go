package agent

/*
Файл agent.go — машина состояний жизненного цикла плагина:

  Stopped --Start()--> Running --Stop()--> Stopped

Start регистрируется у оркестратора с ограниченным числом попыток и
фиксированной паузой между ними; если все попытки провалились, агент
получает локальный идентификатор и продолжает работать автономно —
неудача регистрации никогда не фатальна. Heartbeat живет в отдельной
горутине и завершается либо по одноразовому сигналу остановки, либо
когда флаг running снят. Stop идемпотентен и ограничен по времени
ожидания: зависший heartbeat не блокирует остановку процесса.
*/

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/engine"
)

const (
	defaultHeartbeatInterval = 5 * time.Second
	stopWaitTimeout          = 3 * time.Second
	// Бюджет повторной регистрации в автономном режиме, независим от
	// стартового retry_count
	reregistrationBudget = 3
)

// Config — неизменяемый снимок конфигурации агента. Цикл heartbeat
// работает с копией, а не с живой ссылкой.
type Config struct {
	ServerHost     string
	ServerPort     int
	RetryCount     uint
	RetryInterval  time.Duration
	HostAddress    string
	AdvertisedPort int32

	// Произвольные метаданные для оператора; в протокол не попадают
	Extra map[string]string

	// 0 — дефолтные 5 секунд; в тестах уменьшается
	HeartbeatInterval time.Duration
}

// Identity — паспорт плагина. ID пуст до регистрации и присваивается
// ровно один раз: либо оркестратором, либо локально при фолбэке.
type Identity struct {
	ID          string
	Name        string
	Version     string
	Type        string
	Description string
}

type LifecycleAgent struct {
	client  OrchestratorClient
	metrics *engine.Metrics
	logger  *zap.Logger

	mu          sync.Mutex
	cfg         *Config
	identity    Identity
	running     bool
	localMode   bool
	reregLeft   int
	shutdownCh  chan struct{}
	done        chan struct{}
	stopNotices int
}

func NewLifecycleAgent(client OrchestratorClient, metrics *engine.Metrics, logger *zap.Logger) *LifecycleAgent {
	return &LifecycleAgent{
		client:  client,
		metrics: metrics,
		logger:  logger.With(zap.String("mod", "agent")),
	}
}

// Initialize сохраняет конфигурацию и паспорт. Всегда успешен —
// зарезервировано под будущую валидацию.
func (a *LifecycleAgent) Initialize(cfg Config, identity Identity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	snapshot := cfg
	if snapshot.HeartbeatInterval <= 0 {
		snapshot.HeartbeatInterval = defaultHeartbeatInterval
	}
	if len(cfg.Extra) > 0 {
		snapshot.Extra = make(map[string]string, len(cfg.Extra))
		for k, v := range cfg.Extra {
			snapshot.Extra[k] = v
		}
	}
	a.cfg = &snapshot
	identity.ID = ""
	a.identity = identity
	return true
}

// Start переводит агента в Running. Возвращает false только если
// Initialize не вызывался; провал регистрации — это деградация до
// автономного режима, а не ошибка старта.
func (a *LifecycleAgent) Start(ctx context.Context) bool {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return true
	}
	if a.cfg == nil {
		a.mu.Unlock()
		a.logger.Error("start rejected: agent is not initialized")
		return false
	}
	cfg := *a.cfg
	a.mu.Unlock()

	a.logger.Info("registering with orchestrator",
		zap.String("orchestrator", fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)),
		zap.Any("extra", cfg.Extra))
	if err := a.registerWithRetry(ctx, cfg); err != nil {
		localID := uuid.New().String()
		a.mu.Lock()
		a.identity.ID = localID
		a.localMode = true
		a.reregLeft = reregistrationBudget
		a.mu.Unlock()
		a.logger.Warn("registration abandoned, running standalone",
			zap.String("plugin_id", localID), zap.Error(err))
	}

	a.mu.Lock()
	a.running = true
	a.stopNotices = 0
	a.shutdownCh = make(chan struct{})
	a.done = make(chan struct{})
	shutdownCh, done := a.shutdownCh, a.done
	a.mu.Unlock()

	go a.heartbeatLoop(cfg, shutdownCh, done)
	a.logger.Info("agent started", zap.String("plugin_id", a.PluginID()), zap.Bool("standalone", a.standalone()))
	return true
}

// registerWithRetry делает ровно RetryCount попыток с фиксированной
// паузой между ними; после последней попытки паузы нет.
func (a *LifecycleAgent) registerWithRetry(ctx context.Context, cfg Config) error {
	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(cfg.RetryCount),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	return r.Do(func() error {
		return a.registerOnce(ctx, cfg, true)
	})
}

// registerOnce — одна попытка регистрации. adopt управляет тем,
// присваивается ли выданный идентификатор: при поздней повторной
// регистрации id уже назначен и не переназначается до рестарта.
func (a *LifecycleAgent) registerOnce(ctx context.Context, cfg Config, adopt bool) error {
	a.metrics.RegistrationAttempts.Inc()

	a.mu.Lock()
	req := RegistrationRequest{
		Name:        a.identity.Name,
		Version:     a.identity.Version,
		Type:        a.identity.Type,
		Description: a.identity.Description,
		Host:        cfg.HostAddress,
		Port:        cfg.AdvertisedPort,
	}
	a.mu.Unlock()

	reply, err := a.client.Register(ctx, req)
	if err != nil {
		a.logger.Warn("registration attempt failed", zap.Error(err))
		return err
	}
	if !reply.Success {
		a.logger.Warn("registration rejected", zap.String("message", reply.Message))
		return fmt.Errorf("orchestrator rejected registration: %s", reply.Message)
	}

	if adopt {
		a.mu.Lock()
		a.identity.ID = reply.PluginID
		a.mu.Unlock()
		a.logger.Info("registered with orchestrator",
			zap.String("plugin_id", reply.PluginID), zap.String("message", reply.Message))
	} else {
		// id мутируется ровно один раз за жизнь агента; выданный
		// идентификатор пригодится оператору после рестарта
		a.logger.Info("late re-registration succeeded, keeping local id until restart",
			zap.String("orchestrator_id", reply.PluginID), zap.String("local_id", a.PluginID()))
	}
	return nil
}

func (a *LifecycleAgent) heartbeatLoop(cfg Config, shutdownCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-shutdownCh:
			a.logger.Info("heartbeat loop: shutdown signal received")
			return
		case <-ticker.C:
			if !a.IsRunning() {
				a.logger.Info("heartbeat loop: agent is no longer running")
				return
			}
			if err := a.SendHeartbeat(context.Background()); err != nil {
				// Одиночный неудачный heartbeat не останавливает агента
				a.metrics.HeartbeatsTotal.WithLabelValues("failed").Inc()
				a.logger.Warn("heartbeat failed", zap.Error(err))
				continue
			}
			a.metrics.HeartbeatsTotal.WithLabelValues("ok").Inc()
			a.maybeReregister(cfg)
		}
	}
}

// maybeReregister — повторная регистрация на хвосте успешного
// heartbeat, только в автономном режиме и в пределах своего бюджета.
func (a *LifecycleAgent) maybeReregister(cfg Config) {
	a.mu.Lock()
	if !a.localMode || a.reregLeft <= 0 {
		a.mu.Unlock()
		return
	}
	a.reregLeft--
	left := a.reregLeft
	a.mu.Unlock()

	if err := a.registerOnce(context.Background(), cfg, false); err != nil {
		a.logger.Warn("re-registration attempt failed", zap.Int("attempts_left", left), zap.Error(err))
		return
	}
	// Успех исчерпывает бюджет: больше не пробуем
	a.mu.Lock()
	a.reregLeft = 0
	a.mu.Unlock()
}

// SendHeartbeat — синхронный одиночный heartbeat (используется и циклом,
// и диагностикой). Ошибка, если идентификатор еще не присвоен.
func (a *LifecycleAgent) SendHeartbeat(ctx context.Context) error {
	a.mu.Lock()
	id := a.identity.ID
	a.mu.Unlock()
	if id == "" {
		return fmt.Errorf("send heartbeat: plugin id is empty, agent was never registered")
	}
	return a.client.Heartbeat(ctx, id, "RUNNING")
}

// Stop — идемпотентная остановка: снимает флаг, сигналит циклу,
// ограниченно ждет его завершения и best-effort уведомляет оркестратора.
func (a *LifecycleAgent) Stop(ctx context.Context) bool {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return true
	}
	a.running = false
	close(a.shutdownCh)
	done := a.done
	a.stopNotices++
	id := a.identity.ID
	a.mu.Unlock()

	select {
	case <-done:
	case <-time.After(stopWaitTimeout):
		a.logger.Warn("heartbeat loop did not finish in time, abandoning it")
	}

	if id != "" {
		if err := a.client.NotifyStop(ctx, id); err != nil {
			a.logger.Warn("stop notification failed", zap.Error(err))
		}
	}
	a.logger.Info("agent stopped", zap.String("plugin_id", id))
	return true
}

// PluginID возвращает текущий идентификатор (пустой до регистрации).
func (a *LifecycleAgent) PluginID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity.ID
}

func (a *LifecycleAgent) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *LifecycleAgent) standalone() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.localMode
}
