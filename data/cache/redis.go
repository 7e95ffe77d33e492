package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Pjt727/classwatch/data"
)

const redisKeyPrefix = "classwatch"

// RedisStore keeps the validator and the document under two keys per term.
// Records never expire, they are only replaced or deleted.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func validatorKey(term data.Term) string {
	return fmt.Sprintf("%s:%s:etag", redisKeyPrefix, term.Code())
}

func documentKey(term data.Term) string {
	return fmt.Sprintf("%s:%s:courses", redisKeyPrefix, term.Code())
}

func (r *RedisStore) Get(ctx context.Context, term data.Term) (Record, error) {
	var record Record
	var validatorCmd, documentCmd *redis.StringCmd
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		validatorCmd = pipe.Get(ctx, validatorKey(term))
		documentCmd = pipe.Get(ctx, documentKey(term))
		return nil
	})
	if err != nil && err != redis.Nil {
		return record, fmt.Errorf("redis get %s: %w", term.Code(), err)
	}

	validator, validatorErr := validatorCmd.Result()
	document, documentErr := documentCmd.Bytes()
	if validatorErr == redis.Nil && documentErr == redis.Nil {
		return record, ErrCacheMiss
	}
	if validatorErr != nil && validatorErr != redis.Nil {
		return record, fmt.Errorf("redis get %s: %w", validatorKey(term), validatorErr)
	}
	if documentErr != nil && documentErr != redis.Nil {
		return record, fmt.Errorf("redis get %s: %w", documentKey(term), documentErr)
	}
	record.Validator = validator
	if documentErr == nil {
		record.Document = document
	}
	return record, nil
}

func (r *RedisStore) Put(ctx context.Context, term data.Term, record Record) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, validatorKey(term), record.Validator, 0)
		if record.Document != nil {
			pipe.Set(ctx, documentKey(term), record.Document, 0)
		} else {
			pipe.Del(ctx, documentKey(term))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", term.Code(), err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, term data.Term) error {
	if err := r.client.Del(ctx, validatorKey(term), documentKey(term)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", term.Code(), err)
	}
	return nil
}
