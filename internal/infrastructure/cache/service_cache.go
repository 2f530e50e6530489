// Package cache implementa un caché read-through del catálogo de
// servicios sobre Redis. El catálogo se lee en cada paso 1 de reserva y
// cambia poco; un fallo de Redis degrada a leer la DB, nunca bloquea.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
	"github.com/tu-usuario/sastreria-api/internal/domain/repository"
	"github.com/tu-usuario/sastreria-api/pkg/logger"
)

const (
	serviceKeyPrefix = "service:"
	catalogKey       = "services:all"

	defaultTTL = 15 * time.Minute
)

// NewRedisClient crea y verifica el cliente Redis.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return client, nil
}

var _ repository.ServiceRepository = (*CachedServiceRepository)(nil)

// CachedServiceRepository decora un ServiceRepository con caché Redis.
// Lecturas: primero caché, luego DB (y se repuebla). Mutaciones: escriben
// en DB y luego invalidan; si la invalidación falla se registra y sigue,
// el TTL acota la ventana de catálogo viejo.
type CachedServiceRepository struct {
	repo   repository.ServiceRepository
	client *redis.Client
	log    *logger.Logger
}

// NewCachedServiceRepository construye el decorador.
func NewCachedServiceRepository(repo repository.ServiceRepository, client *redis.Client, log *logger.Logger) *CachedServiceRepository {
	return &CachedServiceRepository{repo: repo, client: client, log: log}
}

// GetByID busca primero en caché, luego en la DB.
func (r *CachedServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	key := serviceKeyPrefix + id
	data, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var s entity.Service
		if err := json.Unmarshal(data, &s); err == nil {
			return &s, nil
		}
		// Entrada corrupta: se descarta y se relee de la DB.
		r.client.Del(ctx, key)
	} else if err != redis.Nil {
		r.log.Warn().Err(err).Str("service_id", id).Msg("caché de servicios no disponible, leyendo DB")
	}

	service, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service != nil {
		r.set(ctx, key, service)
	}
	return service, nil
}

// List lista el catálogo, con el listado completo cacheado bajo una clave.
func (r *CachedServiceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if err == nil {
		var list []*entity.Service
		if err := json.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		r.client.Del(ctx, catalogKey)
	} else if err != redis.Nil {
		r.log.Warn().Err(err).Msg("caché de catálogo no disponible, leyendo DB")
	}

	list, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, catalogKey, list)
	return list, nil
}

// Create escribe en DB e invalida el listado cacheado.
func (r *CachedServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	if err := r.repo.Create(ctx, service); err != nil {
		return err
	}
	r.invalidate(ctx, serviceKeyPrefix+service.ID)
	return nil
}

// Update escribe en DB e invalida servicio y listado.
func (r *CachedServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	if err := r.repo.Update(ctx, service); err != nil {
		return err
	}
	r.invalidate(ctx, serviceKeyPrefix+service.ID)
	return nil
}

// Delete elimina en DB e invalida servicio y listado.
func (r *CachedServiceRepository) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, serviceKeyPrefix+id)
	return nil
}

func (r *CachedServiceRepository) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, defaultTTL).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("no se pudo poblar el caché de servicios")
	}
}

func (r *CachedServiceRepository) invalidate(ctx context.Context, keys ...string) {
	keys = append(keys, catalogKey)
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn().Err(err).Strs("keys", keys).Msg("no se pudo invalidar el caché de servicios")
	}
}
