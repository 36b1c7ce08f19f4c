package utilkit

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"github.com/cecil-the-coder/util-kit/pkg/array"
	"github.com/cecil-the-coder/util-kit/pkg/config"
	"github.com/cecil-the-coder/util-kit/pkg/crypt"
	"github.com/cecil-the-coder/util-kit/pkg/errors"
	"github.com/cecil-the-coder/util-kit/pkg/files"
	"github.com/cecil-the-coder/util-kit/pkg/merge"
	"github.com/cecil-the-coder/util-kit/pkg/password"
)

// Merge applies patches to base without mutating either. See package merge.
func Merge(base any, patches ...merge.Patch) any {
	return merge.Merge(base, patches...)
}

// MergeValues is Merge with each patch converted by merge.From.
func MergeValues(base any, patches ...any) any {
	return merge.MergeValues(base, patches...)
}

// RemoveItemFromList removes the elements of *s matching pred and returns them.
// See package array.
func RemoveItemFromList[S ~[]E, E any](s *S, pred func(value E, index int, s S) bool) S {
	return array.RemoveItemFromList(s, pred)
}

// Kit carries validated configuration and the resources derived from it.
type Kit struct {
	cfg     *config.Config
	limiter *rate.Limiter
}

// New validates cfg and builds a Kit. A nil cfg means config.Default().
func New(cfg *config.Config) (*Kit, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	k := &Kit{cfg: cfg}
	if r := cfg.Settle.RatePerSecond; r > 0 {
		burst := cfg.Settle.Burst
		if burst < 1 {
			burst = 1
		}
		k.limiter = rate.NewLimiter(rate.Limit(r), burst)
		log.Printf("utilkit: settle rate limited to %.2f/s (burst %d)", r, burst)
	}
	return k, nil
}

// Config returns the configuration the Kit was built from.
func (k *Kit) Config() *config.Config {
	return k.cfg
}

// Password generates a password from the configured pattern, length and exclusions.
func (k *Kit) Password() (string, error) {
	p := k.cfg.Password
	return password.Generate(p.Pattern, p.Length, password.Options{Exclude: p.Exclude})
}

func (k *Kit) cipher() (crypt.Algorithm, []byte, []byte, error) {
	c := k.cfg.Crypto
	if c.Key == "" || c.IV == "" {
		return "", nil, nil, errors.Validation("crypto.key and crypto.iv must be configured")
	}
	return crypt.Algorithm(c.Algorithm), []byte(c.Key), []byte(c.IV), nil
}

// Encrypt encrypts data with the configured algorithm, key and IV.
func (k *Kit) Encrypt(data []byte) ([]byte, error) {
	alg, key, iv, err := k.cipher()
	if err != nil {
		return nil, err
	}
	return crypt.Encrypt(alg, key, iv, data)
}

// Decrypt reverses Encrypt.
func (k *Kit) Decrypt(data []byte) ([]byte, error) {
	alg, key, iv, err := k.cipher()
	if err != nil {
		return nil, err
	}
	return crypt.Decrypt(alg, key, iv, data)
}

// WriteFile writes body to target with the configured override and encoding.
// When encrypt is set the configured cipher is applied.
func (k *Kit) WriteFile(target string, body any, encrypt bool) error {
	opts := files.CreateOptions{
		Target:   target,
		Body:     body,
		Encoding: files.Encoding(k.cfg.Files.Encoding),
		Override: k.cfg.Files.Override,
	}
	if encrypt {
		alg, key, iv, err := k.cipher()
		if err != nil {
			return err
		}
		opts.Encrypt, opts.Algorithm, opts.Key, opts.IV = true, alg, key, iv
	}
	return files.CreateFile(opts)
}

// ReadFile reads src, decrypting with the configured cipher when decrypt is set.
func (k *Kit) ReadFile(src string, decrypt bool) (string, error) {
	opts := []files.ReadOption{files.WithEncoding(files.Encoding(k.cfg.Files.Encoding))}
	if decrypt {
		alg, key, iv, err := k.cipher()
		if err != nil {
			return "", err
		}
		opts = append(opts, files.WithDecryption(alg, key, iv))
	}
	return files.ReadFile(src, opts...)
}

// SettleOptions returns the AllSettled options for the configured concurrency
// and rate.
func (k *Kit) SettleOptions() []array.SettleOption {
	var opts []array.SettleOption
	if n := k.cfg.Settle.Concurrency; n > 0 {
		opts = append(opts, array.WithConcurrency(n))
	}
	if k.limiter != nil {
		opts = append(opts, array.WithRateLimit(k.limiter))
	}
	return opts
}

// Settle runs tasks with array.AllSettled under k's throttling.
func Settle[T any](ctx context.Context, k *Kit, tasks []array.Task[T]) array.Settled[T] {
	return array.AllSettled(ctx, tasks, k.SettleOptions()...)
}
