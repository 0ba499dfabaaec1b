package agent_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/agent"
	"github.com/acproject/password-manager/internal/engine"
)

// mockOrchestrator — управляемый оркестратор: фейлит регистрацию,
// пока не исчерпан registerFailures, и считает все вызовы
type mockOrchestrator struct {
	mu                sync.Mutex
	registerFailures  int
	heartbeatFailures int
	registerCalls     int
	heartbeatCalls    int
	heartbeats        []string
	stopNotices       int
	issuedID          string
}

func (m *mockOrchestrator) Register(_ context.Context, _ agent.RegistrationRequest) (*agent.RegistrationReply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registerCalls++
	if m.registerFailures > 0 {
		m.registerFailures--
		return nil, errors.New("connection refused")
	}
	if m.issuedID == "" {
		m.issuedID = "orchestrator-issued-id"
	}
	return &agent.RegistrationReply{PluginID: m.issuedID, Success: true, Message: "welcome"}, nil
}

func (m *mockOrchestrator) Heartbeat(_ context.Context, pluginID, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.heartbeatCalls++
	if m.heartbeatFailures > 0 {
		m.heartbeatFailures--
		return errors.New("connection refused")
	}
	m.heartbeats = append(m.heartbeats, pluginID)
	return nil
}

func (m *mockOrchestrator) NotifyStop(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopNotices++
	return nil
}

func (m *mockOrchestrator) Close() error { return nil }

func (m *mockOrchestrator) snapshot() (registerCalls int, heartbeats []string, stopNotices int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registerCalls, append([]string(nil), m.heartbeats...), m.stopNotices
}

func newAgent(client agent.OrchestratorClient) *agent.LifecycleAgent {
	return agent.NewLifecycleAgent(client, engine.NewMetrics(nil), zap.NewNop())
}

func testConfig() agent.Config {
	return agent.Config{
		ServerHost:        "127.0.0.1",
		ServerPort:        50051,
		RetryCount:        3,
		RetryInterval:     100 * time.Millisecond,
		HostAddress:       "127.0.0.1",
		AdvertisedPort:    50052,
		Extra:             map[string]string{"team": "platform"},
		HeartbeatInterval: 20 * time.Millisecond,
	}
}

func testIdentity() agent.Identity {
	return agent.Identity{Name: "kms-plugin", Version: "1.0.0", Type: "key_management", Description: "key management plugin"}
}

func TestStart_WithoutInitialize(t *testing.T) {
	a := newAgent(&mockOrchestrator{})
	assert.False(t, a.Start(context.Background()))
}

func TestStart_RegistersAndAdoptsID(t *testing.T) {
	mock := &mockOrchestrator{}
	a := newAgent(mock)
	require.True(t, a.Initialize(testConfig(), testIdentity()))

	require.True(t, a.Start(context.Background()))
	defer a.Stop(context.Background())

	assert.True(t, a.IsRunning())
	assert.Equal(t, "orchestrator-issued-id", a.PluginID())
	calls, _, _ := mock.snapshot()
	assert.Equal(t, 1, calls)
}

// Недоступный оркестратор: ровно retry_count попыток с паузами между
// ними, после чего агент работает автономно с локальным идентификатором.
func TestStart_FallsBackToLocalID(t *testing.T) {
	mock := &mockOrchestrator{registerFailures: 100}
	a := newAgent(mock)
	cfg := testConfig()
	cfg.HeartbeatInterval = time.Hour // цикл не должен вмешиваться
	require.True(t, a.Initialize(cfg, testIdentity()))

	started := time.Now()
	require.True(t, a.Start(context.Background()))
	defer a.Stop(context.Background())
	elapsed := time.Since(started)

	calls, _, _ := mock.snapshot()
	assert.Equal(t, 3, calls)
	// Две межпопыточные паузы по 100ms, после последней попытки паузы нет
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Less(t, elapsed, 300*time.Millisecond)

	assert.True(t, a.IsRunning())
	assert.NotEmpty(t, a.PluginID())
	assert.NotEqual(t, "orchestrator-issued-id", a.PluginID())
}

func TestHeartbeatLoop_Delivers(t *testing.T) {
	mock := &mockOrchestrator{}
	a := newAgent(mock)
	require.True(t, a.Initialize(testConfig(), testIdentity()))
	require.True(t, a.Start(context.Background()))

	time.Sleep(110 * time.Millisecond)
	require.True(t, a.Stop(context.Background()))

	_, heartbeats, _ := mock.snapshot()
	require.GreaterOrEqual(t, len(heartbeats), 2)
	for _, id := range heartbeats {
		assert.Equal(t, "orchestrator-issued-id", id)
	}
}

// Одиночные сбои heartbeat не останавливают агента: цикл продолжает
// тикать и доставляет heartbeat'ы, когда оркестратор снова отвечает.
func TestHeartbeatLoop_SurvivesFailures(t *testing.T) {
	mock := &mockOrchestrator{heartbeatFailures: 3}
	a := newAgent(mock)
	require.True(t, a.Initialize(testConfig(), testIdentity()))
	require.True(t, a.Start(context.Background()))

	// 3 неудачных тика + минимум 2 успешных при интервале 20ms
	time.Sleep(150 * time.Millisecond)
	assert.True(t, a.IsRunning())
	require.True(t, a.Stop(context.Background()))

	mock.mu.Lock()
	calls, delivered := mock.heartbeatCalls, len(mock.heartbeats)
	mock.mu.Unlock()
	assert.GreaterOrEqual(t, calls, 5)
	require.GreaterOrEqual(t, delivered, 2)
	assert.Equal(t, calls-3, delivered)
}

// Поздняя регистрация из автономного режима: успех логируется и
// исчерпывает бюджет, но работающий агент сохраняет локальный id.
func TestReregistration_KeepsLocalID(t *testing.T) {
	mock := &mockOrchestrator{registerFailures: 3}
	a := newAgent(mock)
	cfg := testConfig()
	cfg.RetryInterval = 5 * time.Millisecond
	require.True(t, a.Initialize(cfg, testIdentity()))
	require.True(t, a.Start(context.Background()))

	localID := a.PluginID()
	require.NotEmpty(t, localID)

	// Ждем несколько heartbeat'ов: первый успешный тянет за собой
	// повторную регистрацию, она успешна с первого раза
	time.Sleep(150 * time.Millisecond)
	require.True(t, a.Stop(context.Background()))

	calls, heartbeats, _ := mock.snapshot()
	assert.Equal(t, 4, calls) // 3 стартовых + 1 повторная
	assert.Equal(t, localID, a.PluginID())
	for _, id := range heartbeats {
		assert.Equal(t, localID, id)
	}
}

func TestStop_Idempotent(t *testing.T) {
	mock := &mockOrchestrator{}
	a := newAgent(mock)
	require.True(t, a.Initialize(testConfig(), testIdentity()))
	require.True(t, a.Start(context.Background()))

	assert.True(t, a.Stop(context.Background()))
	assert.True(t, a.Stop(context.Background()))
	assert.False(t, a.IsRunning())

	_, _, stopNotices := mock.snapshot()
	assert.Equal(t, 1, stopNotices)
}

func TestStart_IdempotentWhileRunning(t *testing.T) {
	mock := &mockOrchestrator{}
	a := newAgent(mock)
	require.True(t, a.Initialize(testConfig(), testIdentity()))
	require.True(t, a.Start(context.Background()))
	defer a.Stop(context.Background())

	require.True(t, a.Start(context.Background()))
	calls, _, _ := mock.snapshot()
	assert.Equal(t, 1, calls)
}

func TestSendHeartbeat_EmptyID(t *testing.T) {
	a := newAgent(&mockOrchestrator{})
	require.True(t, a.Initialize(testConfig(), testIdentity()))

	err := a.SendHeartbeat(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin id is empty")
}
