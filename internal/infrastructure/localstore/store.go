// Package localstore implementa el "local storage" de la demo: un único
// archivo JSON con un mapa clave -> blob serializado. Toda lectura/escritura
// es del blob completo (read-modify-write), sin updates parciales, igual que
// el localStorage del navegador que reemplaza.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hwshop/storefront-api/pkg/logger"
)

// Claves fijas del layout de persistencia.
const (
	KeyCart            = "hwshop-cart"      // blob del carrito
	KeySession         = "currentUser"      // usuario de la sesión actual
	KeyUsers           = "users"            // directorio de usuarios
	KeyCartInitialized = "cart-initialized" // flag: data semilla de carrito instalada
	OrderKeyPrefix     = "order_"           // una clave por orden: order_<id>
)

// Store almacén clave-valor durable respaldado por un archivo JSON.
// Un mutex protege el mapa: a diferencia del original de un solo hilo, los
// handlers HTTP de Fiber son concurrentes.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
	log  *logger.Logger
}

// Open carga (o crea) el almacén en path. Un archivo corrupto o ausente se
// trata como almacén vacío: se registra un warning y no se propaga error.
func Open(path string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio del store: %w", err)
	}
	s := &Store{path: path, data: make(map[string]json.RawMessage), log: log}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("leer store: %w", err)
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("store corrupto, se inicia vacío")
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Get deserializa el valor de key en v. Devuelve false si la clave no existe
// o el blob no parsea (data corrupta = ausencia de data).
func (s *Store) Get(key string, v any) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("blob corrupto, se trata como ausente")
		return false
	}
	return true
}

// Has indica si la clave existe.
func (s *Store) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

// Set serializa v bajo key y reescribe el archivo completo.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// Delete elimina la clave y reescribe el archivo. Borrar una clave ausente es no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// Keys devuelve las claves con el prefijo dado, ordenadas.
func (s *Store) Keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// flush reescribe el archivo completo. Caller debe tener el lock.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("escribir store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("reemplazar store: %w", err)
	}
	return nil
}
