// Package badgerstore implementa el almacén de registros sobre Badger (KV embebido).
//
// Esquema de llaves:
//
//	supplier/<id:020d>                    → JSON del proveedor
//	record/<id:020d>                      → JSON del registro
//	idx/supplier/<sid:020d>/<id:020d>     → vacío (índice por proveedor)
//	seq/supplier, seq/record              → secuencias de Badger
//
// Los IDs van con ceros a la izquierda para que el orden de llaves sea el numérico.
package badgerstore

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const seqBandwidth = 64

var (
	prefixSupplier = []byte("supplier/")
	prefixRecord   = []byte("record/")
	prefixIndex    = []byte("idx/supplier/")
)

// Store base Badger compartida por los repositorios.
type Store struct {
	db          *badger.DB
	supplierSeq *badger.Sequence
	recordSeq   *badger.Sequence
}

// Open abre (o crea) la base en dir con escrituras síncronas: un Append confirmado
// ya está en disco. Con dir vacío la base vive en memoria (pruebas).
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithSyncWrites(true).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("abrir badger: %w", err)
	}
	supplierSeq, err := db.GetSequence([]byte("seq/supplier"), seqBandwidth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("secuencia de proveedores: %w", err)
	}
	recordSeq, err := db.GetSequence([]byte("seq/record"), seqBandwidth)
	if err != nil {
		_ = supplierSeq.Release()
		db.Close()
		return nil, fmt.Errorf("secuencia de registros: %w", err)
	}
	return &Store{db: db, supplierSeq: supplierSeq, recordSeq: recordSeq}, nil
}

// Close libera las secuencias y cierra la base.
func (s *Store) Close() error {
	err := errors.Join(s.supplierSeq.Release(), s.recordSeq.Release())
	return errors.Join(err, s.db.Close())
}

// Suppliers repositorio del catálogo.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{store: s} }

// Records repositorio del log de registros.
func (s *Store) Records() *RecordRepo { return &RecordRepo{store: s} }

// nextID siguiente identidad de la secuencia. Badger entrega 0 primero; los IDs empiezan en 1.
// Tras reabrir se descarta el resto del bloque reservado: puede haber huecos, nunca repeticiones.
func nextID(seq *badger.Sequence) (int64, error) {
	n, err := seq.Next()
	if err != nil {
		return 0, err
	}
	return int64(n) + 1, nil
}

func supplierKey(id int64) []byte { return []byte(fmt.Sprintf("supplier/%020d", id)) }

func recordKey(id int64) []byte { return []byte(fmt.Sprintf("record/%020d", id)) }

func indexPrefix(supplierID int64) []byte {
	return []byte(fmt.Sprintf("idx/supplier/%020d/", supplierID))
}

func indexKey(supplierID, recordID int64) []byte {
	return append(indexPrefix(supplierID), []byte(fmt.Sprintf("%020d", recordID))...)
}
