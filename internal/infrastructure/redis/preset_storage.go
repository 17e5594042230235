package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/almacen-pro/internal/application/search"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/pkg/config"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// Claves conocidas del almacén clave-valor. Cada una guarda la lista
// completa como un documento JSON que se reescribe en cada mutación.
const (
	presetsKey = "search:presets"
	recentsKey = "search:recents"
)

var _ search.Storage = (*PresetStorage)(nil)

// PresetStorage persiste presets y búsquedas recientes en Redis.
// Payloads malformados degradan a lista vacía con aviso en el log; los
// fallos de red sí se propagan (el caller decide).
type PresetStorage struct {
	client *redis.Client
	log    *logger.Logger
}

// NewClient crea el cliente Redis y verifica conectividad.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := buildOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func buildOptions(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("redis url inválida: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// NewPresetStorage construye el adaptador sobre un cliente ya conectado.
func NewPresetStorage(client *redis.Client, log *logger.Logger) *PresetStorage {
	return &PresetStorage{client: client, log: log}
}

// LoadPresets lee la lista de presets.
func (s *PresetStorage) LoadPresets() ([]entity.FilterPreset, error) {
	var presets []entity.FilterPreset
	if err := s.load(presetsKey, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// SavePresets reescribe la lista completa de presets.
func (s *PresetStorage) SavePresets(presets []entity.FilterPreset) error {
	return s.save(presetsKey, presets)
}

// LoadRecents lee el historial de búsquedas recientes.
func (s *PresetStorage) LoadRecents() ([]entity.RecentSearch, error) {
	var recents []entity.RecentSearch
	if err := s.load(recentsKey, &recents); err != nil {
		return nil, err
	}
	return recents, nil
}

// SaveRecents reescribe el historial completo.
func (s *PresetStorage) SaveRecents(recents []entity.RecentSearch) error {
	return s.save(recentsKey, recents)
}

func (s *PresetStorage) load(key string, out any) error {
	ctx, cancel := opContext()
	defer cancel()
	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Payload corrupto: se parte de lista vacía, nunca se propaga.
		s.log.Warn().Err(err).Str("key", key).Msg("payload persistido malformado; se ignora")
	}
	return nil
}

func (s *PresetStorage) save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	ctx, cancel := opContext()
	defer cancel()
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 3*time.Second)
}
