package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// collection es una colección JSON en disco: un archivo por colección con el
// arreglo completo de registros. Toda escritura es leer-modificar-reescribir
// bajo mutex, para que dos Create concurrentes no se pisen entre sí.
//
// Las lecturas fallan en abierto: archivo ausente o JSON corrupto equivalen a
// colección vacía. Un archivo a medio escribir se acepta tal cual en la
// siguiente lectura; no hay mecanismo de recuperación.
type collection[T any] struct {
	fs   afero.Fs
	path string
	idOf func(*T) string
	mu   sync.Mutex
}

func newCollection[T any](fs afero.Fs, path string, idOf func(*T) string) *collection[T] {
	return &collection[T]{fs: fs, path: path, idOf: idOf}
}

// readAll carga todos los registros. Ausente o corrupto -> lista vacía, sin error.
func (c *collection[T]) readAll() ([]*T, error) {
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección %s: %w", c.path, err)
	}
	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		// JSON corrupto se trata igual que ausente
		return nil, nil
	}
	return items, nil
}

// writeAll reescribe la colección completa.
func (c *collection[T]) writeAll(items []*T) error {
	if items == nil {
		items = []*T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", c.path, err)
	}
	if err := afero.WriteFile(c.fs, c.path, data, 0o644); err != nil {
		return fmt.Errorf("escribir colección %s: %w", c.path, err)
	}
	return nil
}

// List devuelve todos los registros en orden de inserción.
func (c *collection[T]) List() ([]*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readAll()
}

// GetByID busca linealmente por id. Devuelve (nil, nil) si no existe.
func (c *collection[T]) GetByID(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.readAll()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if c.idOf(it) == id {
			return it, nil
		}
	}
	return nil, nil
}

// Create agrega el registro al final y reescribe la colección.
func (c *collection[T]) Create(item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.readAll()
	if err != nil {
		return err
	}
	items = append(items, item)
	return c.writeAll(items)
}

// Update reemplaza in situ el registro con el mismo id. Si no existe, no hace nada.
func (c *collection[T]) Update(item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.readAll()
	if err != nil {
		return err
	}
	id := c.idOf(item)
	for i, it := range items {
		if c.idOf(it) == id {
			items[i] = item
			return c.writeAll(items)
		}
	}
	return nil
}

// Delete filtra el registro por id y reescribe. Si no existe, no hace nada.
func (c *collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.readAll()
	if err != nil {
		return err
	}
	kept := items[:0]
	removed := false
	for _, it := range items {
		if c.idOf(it) == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return nil
	}
	return c.writeAll(kept)
}
