package engine

/*
Файл router.go — тонкий командный слой: имя команды + map параметров
превращаются в типизированный вызов движка, а результат — в единый
CommandResult. Таблица диспетчеризации закрытая: неизвестная команда
даёт единообразный отказ с именем команды.

Перед диспетчеризацией стоит token-bucket лимитер: он защищает путь
в HSM от шторма команд. Отказ лимитера — тоже CommandResult, не паника.
*/

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/acproject/password-manager/internal/domain"
)

type commandHandler func(ctx context.Context, params map[string]string) (interface{}, error)

type CommandRouter struct {
	engine   *KeyManagementEngine
	limiter  *rate.Limiter
	metrics  *Metrics
	logger   *zap.Logger
	handlers map[string]commandHandler
}

func NewCommandRouter(engine *KeyManagementEngine, limiter *rate.Limiter, metrics *Metrics, logger *zap.Logger) *CommandRouter {
	r := &CommandRouter{
		engine:  engine,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.With(zap.String("mod", "router")),
	}
	r.handlers = map[string]commandHandler{
		"create_key":     r.createKey,
		"rotate_key":     r.rotateKey,
		"get_key":        r.getKey,
		"delete_key":     r.deleteKey,
		"list_keys":      r.listKeys,
		"list_audit":     r.listAudit,
		"list_approvals": r.listApprovals,
		"sign":           r.sign,
		"verify":         r.verify,
		"encrypt":        r.encrypt,
		"decrypt":        r.decrypt,
	}
	return r
}

// Execute выполняет команду. Любой исход — CommandResult: командный
// слой не возвращает ошибок и не паникует.
func (r *CommandRouter) Execute(ctx context.Context, command string, params map[string]string) domain.CommandResult {
	r.metrics.CommandsTotal.WithLabelValues(command).Inc()
	start := time.Now()
	status := "success"
	defer func() {
		r.metrics.CommandDuration.WithLabelValues(command, status).Observe(time.Since(start).Seconds())
	}()

	handler, ok := r.handlers[command]
	if !ok {
		status = "failure"
		r.metrics.ErrorsTotal.WithLabelValues("unsupported").Inc()
		return failure(fmt.Sprintf("unsupported command: %s", command))
	}

	if r.limiter != nil && !r.limiter.Allow() {
		status = "failure"
		r.metrics.ErrorsTotal.WithLabelValues("rate_limit").Inc()
		return failure("rate limit exceeded, retry later")
	}

	payload, err := handler(ctx, params)
	if err != nil {
		status = "failure"
		r.metrics.ErrorsTotal.WithLabelValues(classify(err)).Inc()
		r.logger.Warn("command failed", zap.String("command", command), zap.Error(err))
		return failure(err.Error())
	}

	data, err := json.Marshal(payload)
	if err != nil {
		status = "failure"
		r.metrics.ErrorsTotal.WithLabelValues("internal").Inc()
		return failure(fmt.Sprintf("serialize result: %v", err))
	}
	return domain.CommandResult{Success: true, Result: string(data)}
}

func (r *CommandRouter) createKey(ctx context.Context, params map[string]string) (interface{}, error) {
	name, ok := params["name"]
	if !ok || name == "" {
		return nil, domain.MissingParam("name")
	}

	keyType := domain.KeyTypeSymmetric
	if v, ok := params["key_type"]; ok {
		parsed, err := domain.ParseKeyType(v)
		if err != nil {
			return nil, err
		}
		keyType = parsed
	}
	algorithm := domain.AlgorithmAES256
	if v, ok := params["algorithm"]; ok {
		parsed, err := domain.ParseKeyAlgorithm(v)
		if err != nil {
			return nil, err
		}
		algorithm = parsed
	}

	req := CreateKeyRequest{
		Name:             name,
		Description:      params["description"],
		KeyType:          keyType,
		Algorithm:        algorithm,
		Owner:            userOrDefault(params),
		RequiresApproval: params["requires_approval"] == "true",
		Tags:             collectTags(params),
	}
	if v, ok := params["expiration_date"]; ok {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, &domain.ValidationError{Field: "expiration_date", Value: v, Reason: "expected RFC3339 timestamp"}
		}
		req.ExpirationDate = &t
	}
	return r.engine.CreateKey(ctx, req)
}

func (r *CommandRouter) rotateKey(ctx context.Context, params map[string]string) (interface{}, error) {
	keyID, ok := params["key_id"]
	if !ok || keyID == "" {
		return nil, domain.MissingParam("key_id")
	}
	return r.engine.RotateKey(ctx, keyID, userOrDefault(params))
}

func (r *CommandRouter) getKey(_ context.Context, params map[string]string) (interface{}, error) {
	keyID, ok := params["key_id"]
	if !ok || keyID == "" {
		return nil, domain.MissingParam("key_id")
	}
	return r.engine.GetKey(keyID)
}

func (r *CommandRouter) deleteKey(ctx context.Context, params map[string]string) (interface{}, error) {
	keyID, ok := params["key_id"]
	if !ok || keyID == "" {
		return nil, domain.MissingParam("key_id")
	}
	if err := r.engine.DeleteKey(ctx, keyID, userOrDefault(params)); err != nil {
		return nil, err
	}
	return map[string]string{"key_id": keyID, "status": string(domain.KeyStatusDestroyed)}, nil
}

func (r *CommandRouter) listKeys(_ context.Context, params map[string]string) (interface{}, error) {
	// Все параметры трактуются как фильтры; неизвестные движок игнорирует
	return r.engine.ListKeys(params), nil
}

func (r *CommandRouter) listAudit(_ context.Context, params map[string]string) (interface{}, error) {
	limit := 0
	if v, ok := params["limit"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, &domain.ValidationError{Field: "limit", Value: v, Reason: "expected non-negative integer"}
		}
		limit = n
	}
	filters := make(map[string]string, len(params))
	for k, v := range params {
		if k == "limit" {
			continue
		}
		filters[k] = v
	}
	return r.engine.ListAudit(filters, limit), nil
}

func (r *CommandRouter) listApprovals(_ context.Context, _ map[string]string) (interface{}, error) {
	return r.engine.ListApprovals(), nil
}

func (r *CommandRouter) sign(ctx context.Context, params map[string]string) (interface{}, error) {
	keyID, data, err := keyAndData(params, "data")
	if err != nil {
		return nil, err
	}
	signature, err := r.engine.Sign(ctx, keyID, data)
	if err != nil {
		return nil, err
	}
	return map[string]string{"signature": base64.StdEncoding.EncodeToString(signature)}, nil
}

func (r *CommandRouter) verify(ctx context.Context, params map[string]string) (interface{}, error) {
	keyID, data, err := keyAndData(params, "data")
	if err != nil {
		return nil, err
	}
	sigParam, ok := params["signature"]
	if !ok {
		return nil, domain.MissingParam("signature")
	}
	signature, err := base64.StdEncoding.DecodeString(sigParam)
	if err != nil {
		return nil, &domain.ValidationError{Field: "signature", Reason: "expected base64"}
	}
	valid, err := r.engine.Verify(ctx, keyID, data, signature)
	if err != nil {
		return nil, err
	}
	return map[string]bool{"valid": valid}, nil
}

func (r *CommandRouter) encrypt(ctx context.Context, params map[string]string) (interface{}, error) {
	keyID, plaintext, err := keyAndData(params, "plaintext")
	if err != nil {
		return nil, err
	}
	ciphertext, err := r.engine.Encrypt(ctx, keyID, plaintext)
	if err != nil {
		return nil, err
	}
	return map[string]string{"ciphertext": base64.StdEncoding.EncodeToString(ciphertext)}, nil
}

func (r *CommandRouter) decrypt(ctx context.Context, params map[string]string) (interface{}, error) {
	keyID, ok := params["key_id"]
	if !ok || keyID == "" {
		return nil, domain.MissingParam("key_id")
	}
	ctParam, ok := params["ciphertext"]
	if !ok {
		return nil, domain.MissingParam("ciphertext")
	}
	ciphertext, err := base64.StdEncoding.DecodeString(ctParam)
	if err != nil {
		return nil, &domain.ValidationError{Field: "ciphertext", Reason: "expected base64"}
	}
	plaintext, err := r.engine.Decrypt(ctx, keyID, ciphertext)
	if err != nil {
		return nil, err
	}
	return map[string]string{"plaintext": string(plaintext)}, nil
}

func keyAndData(params map[string]string, dataField string) (string, []byte, error) {
	keyID, ok := params["key_id"]
	if !ok || keyID == "" {
		return "", nil, domain.MissingParam("key_id")
	}
	data, ok := params[dataField]
	if !ok {
		return "", nil, domain.MissingParam(dataField)
	}
	return keyID, []byte(data), nil
}

func userOrDefault(params map[string]string) string {
	if u, ok := params["user"]; ok && u != "" {
		return u
	}
	return "system"
}

func collectTags(params map[string]string) map[string]string {
	tags := make(map[string]string)
	for k, v := range params {
		if name, ok := strings.CutPrefix(k, "tag."); ok && name != "" {
			tags[name] = v
		}
	}
	return tags
}

func failure(msg string) domain.CommandResult {
	return domain.CommandResult{Success: false, ErrorMessage: msg}
}

// classify раскладывает ошибку по типам для метрики kms_errors_total.
func classify(err error) string {
	var ve *domain.ValidationError
	var ar *domain.ApprovalRequiredError
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &ar):
		return "approval_required"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrTransport):
		return "transport"
	default:
		return "internal"
	}
}
