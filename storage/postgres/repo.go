package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AnaliseRepo encapsula as operações sobre a tabela de análises.
type AnaliseRepo struct {
	db *gorm.DB
}

func NewAnaliseRepo(db *gorm.DB) *AnaliseRepo {
	return &AnaliseRepo{db: db}
}

func (r *AnaliseRepo) Create(ctx context.Context, a *Analise) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnaliseRepo) GetByDocID(ctx context.Context, docID string) (*Analise, error) {
	var a Analise
	err := r.db.WithContext(ctx).
		Where("doc_id = ?", docID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByTextHash devolve a análise memoizada de um texto idêntico, ou nil.
func (r *AnaliseRepo) GetByTextHash(ctx context.Context, hash string) (*Analise, error) {
	var a Analise
	err := r.db.WithContext(ctx).
		Where("text_hash = ?", hash).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnaliseRepo) Delete(ctx context.Context, docID string) error {
	return r.db.WithContext(ctx).Where("doc_id = ?", docID).Delete(&Analise{}).Error
}

// PurgeOlderThan remove análises criadas antes do corte; usado pelo cron.
func (r *AnaliseRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&Analise{})
	return result.RowsAffected, result.Error
}
