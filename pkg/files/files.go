// Package files wraps common filesystem chores: reading text with optional
// decryption, writing files in several encodings, templated generation, and
// directory walking.
package files

import (
	"bytes"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/cecil-the-coder/util-kit/pkg/crypt"
	"github.com/cecil-the-coder/util-kit/pkg/errors"
	"github.com/cecil-the-coder/util-kit/pkg/jsonutil"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Encoding selects how a string body is turned into bytes.
type Encoding string

const (
	UTF8    Encoding = "utf8"
	UTF16LE Encoding = "utf-16le"
	Base64  Encoding = "base64"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UnixifyPath converts OS path separators to forward slashes.
func UnixifyPath(path string) string {
	return filepath.ToSlash(path)
}

// FileExists reports whether path can be stat'ed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDirectory creates target and any missing parents.
func MakeDirectory(target string) error {
	if err := os.MkdirAll(filepath.Clean(target), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", target, err)
	}
	return nil
}

// EnsureFilePath creates the parent directory of target.
func EnsureFilePath(target string) error {
	return MakeDirectory(filepath.Dir(target))
}

// StripBOM removes a leading byte order mark.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

func notFound(path string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.NameFileNotFound, err, fmt.Sprintf("file %s not found", path))
	}
	return fmt.Errorf("failed to read %s: %w", path, err)
}

func readRaw(src string) ([]byte, error) {
	if src == "" {
		return nil, errors.Validation("filename cannot be empty")
	}
	data, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return nil, notFound(src, err)
	}
	return data, nil
}

type readConfig struct {
	decrypt   bool
	algorithm crypt.Algorithm
	key, iv   []byte
	encoding  Encoding
}

// ReadOption configures ReadFile.
type ReadOption func(*readConfig)

// WithDecryption decrypts the file contents before decoding them.
func WithDecryption(alg crypt.Algorithm, key, iv []byte) ReadOption {
	return func(c *readConfig) {
		c.decrypt = true
		c.algorithm = alg
		c.key = key
		c.iv = iv
	}
}

// WithEncoding sets the encoding the file was written in. The default is UTF8.
func WithEncoding(enc Encoding) ReadOption {
	return func(c *readConfig) {
		c.encoding = enc
	}
}

// ReadFile returns the contents of src as text with any BOM removed.
// A missing file yields a FileNotFoundError.
func ReadFile(src string, opts ...ReadOption) (string, error) {
	cfg := readConfig{encoding: UTF8}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := readRaw(src)
	if err != nil {
		return "", err
	}
	if cfg.decrypt {
		data, err = crypt.Decrypt(cfg.algorithm, cfg.key, cfg.iv, data)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt %s: %w", src, err)
		}
	}

	switch cfg.encoding {
	case UTF8, "":
		return StripBOM(string(data)), nil
	case UTF16LE:
		s, err := utf16le.NewDecoder().String(string(data))
		if err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", src, err)
		}
		return StripBOM(s), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", errors.Validation(fmt.Sprintf("unsupported encoding: %s", cfg.encoding))
	}
}

// ReadImage returns the raw bytes of src.
func ReadImage(src string) ([]byte, error) {
	return readRaw(src)
}

// LoadFile reads text files as strings and images as bytes, choosing by mime
// type. Other types are rejected.
func LoadFile(src string) (any, error) {
	t := MimeType(src)
	switch {
	case strings.HasPrefix(t, "text"):
		return ReadFile(src)
	case strings.HasPrefix(t, "image"):
		return ReadImage(src)
	default:
		log.Printf("files: unsupported file type %q for %s", t, src)
		return nil, errors.Validation(fmt.Sprintf("unsupported file type: %q", t))
	}
}

// ReadJSON reads and parses a JSON file.
func ReadJSON(src string) (any, error) {
	content, err := ReadFile(src)
	if err != nil {
		return nil, err
	}
	return jsonutil.Parse(content)
}

// WriteJSON encodes body and writes it to target.
func WriteJSON(target string, body any, override bool) error {
	s, err := jsonutil.Stringify(body)
	if err != nil {
		return err
	}
	return CreateFile(CreateOptions{Target: target, Body: s, Override: override})
}

// CreateOptions describe a file to write.
type CreateOptions struct {
	Target string
	// Body is a string, decoded per Encoding, or raw bytes written as is.
	Body     any
	Encoding Encoding
	// Override replaces an existing file. Without it CreateFile leaves the file alone.
	Override bool

	Encrypt   bool
	Algorithm crypt.Algorithm
	Key       []byte
	IV        []byte
}

func encode(body any, enc Encoding) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		switch enc {
		case UTF8, "":
			return []byte(b), nil
		case UTF16LE:
			s, err := utf16le.NewEncoder().String(b)
			if err != nil {
				return nil, fmt.Errorf("failed to encode UTF-16LE: %w", err)
			}
			return []byte(s), nil
		case Base64:
			data, err := base64.StdEncoding.DecodeString(b)
			if err != nil {
				return nil, errors.Wrap(errors.NameValidation, err, "body is not valid base64")
			}
			return data, nil
		default:
			return nil, errors.Validation(fmt.Sprintf("unsupported encoding: %s", enc))
		}
	default:
		return nil, errors.Validation(fmt.Sprintf("unsupported body type %T", body))
	}
}

// CreateFile writes opts.Body to opts.Target, creating parent directories.
// An existing target is kept unless opts.Override is set.
func CreateFile(opts CreateOptions) error {
	if opts.Target == "" {
		return errors.Validation("target cannot be empty")
	}
	if FileExists(opts.Target) && !opts.Override {
		return nil
	}

	data, err := encode(opts.Body, opts.Encoding)
	if err != nil {
		return err
	}
	if opts.Encrypt {
		data, err = crypt.Encrypt(opts.Algorithm, opts.Key, opts.IV, data)
		if err != nil {
			return fmt.Errorf("failed to encrypt %s: %w", opts.Target, err)
		}
	}
	return write(opts.Target, data)
}

func write(target string, data []byte) error {
	if err := EnsureFilePath(target); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(target), data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// CreateImageFile writes raw image bytes to target.
func CreateImageFile(target string, data []byte, override bool) error {
	return CreateFile(CreateOptions{Target: target, Body: bytes.Clone(data), Override: override})
}

// CopyFile copies src to dest. An existing dest is kept unless override is set.
func CopyFile(src, dest string, override bool) error {
	if FileExists(dest) && !override {
		return nil
	}
	data, err := readRaw(src)
	if err != nil {
		return err
	}
	return write(dest, data)
}

// RenameFile moves src to dest, creating dest's parent directory.
func RenameFile(src, dest string) error {
	if !FileExists(src) {
		return errors.FileNotFound(fmt.Sprintf("file %s not found", src))
	}
	if err := EnsureFilePath(dest); err != nil {
		return err
	}
	if err := os.Rename(filepath.Clean(src), filepath.Clean(dest)); err != nil {
		return fmt.Errorf("failed to rename %s: %w", src, err)
	}
	return nil
}

// WalkSync lists every regular file under dir in lexical order.
func WalkSync(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, notFound(dir, err)
	}
	return out, nil
}

// GetFolders lists every directory below dir, parents before children.
func GetFolders(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != dir {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, notFound(dir, err)
	}
	return out, nil
}
