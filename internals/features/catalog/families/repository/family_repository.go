// file: internals/features/catalog/families/repository/family_repository.go
package repository

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"fct_backend/internals/constants"
	"fct_backend/internals/features/catalog/families/model"
	helper "fct_backend/internals/helpers"

	"gorm.io/gorm"
)

var familyIDPattern = regexp.MustCompile(`^[A-Z0-9]{3}$`)

const maxFamilyNameLen = 120

// FamilyFilter: Status kosong = semua family.
type FamilyFilter struct {
	Status string
}

// FamilyPatch: nil = field tidak disentuh.
type FamilyPatch struct {
	Name   *string
	Status *string
}

// Columns maps the patch onto family columns. Only present fields appear.
func (p FamilyPatch) Columns() (map[string]any, error) {
	cols := map[string]any{}
	if p.Name != nil {
		name, err := normalizeFamilyName(*p.Name)
		if err != nil {
			return nil, err
		}
		cols["family_name"] = name
	}
	if p.Status != nil {
		st, err := constants.ParseStatus(*p.Status)
		if err != nil {
			return nil, helper.Validation("%s", err.Error())
		}
		cols["family_status"] = st
	}
	return cols, nil
}

type FamilyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// WithTx returns a repository bound to an open transaction.
func (r *FamilyRepository) WithTx(tx *gorm.DB) *FamilyRepository {
	return &FamilyRepository{db: tx}
}

func NormalizeFamilyID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func ValidateFamilyID(id string) error {
	if !familyIDPattern.MatchString(id) {
		return helper.Validation("El código de familia %q debe tener 3 caracteres alfanuméricos", id)
	}
	return nil
}

func normalizeFamilyName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", helper.Validation("El nombre de la familia es obligatorio")
	}
	if len([]rune(name)) > maxFamilyNameLen {
		return "", helper.Validation("El nombre de la familia supera %d caracteres", maxFamilyNameLen)
	}
	return name, nil
}

func (r *FamilyRepository) List(ctx context.Context, f FamilyFilter) ([]model.FamilyModel, error) {
	q := r.db.WithContext(ctx).Model(&model.FamilyModel{})
	if strings.TrimSpace(f.Status) != "" {
		st, err := constants.ParseStatus(f.Status)
		if err != nil {
			return nil, helper.Validation("%s", err.Error())
		}
		q = q.Where("family_status = ?", st)
	}

	rows := []model.FamilyModel{}
	if err := q.Order("family_id ASC").Find(&rows).Error; err != nil {
		return nil, helper.Storage("listar familias", err)
	}
	return rows, nil
}

func (r *FamilyRepository) Get(ctx context.Context, id string) (model.FamilyModel, error) {
	id = NormalizeFamilyID(id)
	var m model.FamilyModel
	if err := r.db.WithContext(ctx).Where("family_id = ?", id).First(&m).Error; err != nil {
		return model.FamilyModel{}, helper.MapStoreError(err, helper.StoreMessages{
			Op:       "obtener familia",
			NotFound: "La familia " + id + " no existe",
		})
	}
	return m, nil
}

// GetMany resolves a set of family ids in one query.
// Missing ids are simply absent from the result.
func (r *FamilyRepository) GetMany(ctx context.Context, ids []string) (map[string]model.FamilyModel, error) {
	out := make(map[string]model.FamilyModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	uniq := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	sort.Strings(uniq)

	var rows []model.FamilyModel
	if err := r.db.WithContext(ctx).Where("family_id IN ?", uniq).Find(&rows).Error; err != nil {
		return nil, helper.Storage("resolver familias", err)
	}
	for _, row := range rows {
		out[row.FamilyID] = row
	}
	return out, nil
}

func (r *FamilyRepository) Create(ctx context.Context, id, name string) (model.FamilyModel, error) {
	id = NormalizeFamilyID(id)
	if err := ValidateFamilyID(id); err != nil {
		return model.FamilyModel{}, err
	}
	name, err := normalizeFamilyName(name)
	if err != nil {
		return model.FamilyModel{}, err
	}

	msgs := helper.StoreMessages{
		Op:       "crear familia",
		Conflict: "La familia " + id + " ya existe",
	}
	m := model.FamilyModel{
		FamilyID:     id,
		FamilyName:   name,
		FamilyStatus: constants.StatusActive,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cek duplikat id; the primary key still decides a race
		var cnt int64
		if err := tx.Model(&model.FamilyModel{}).Where("family_id = ?", id).Count(&cnt).Error; err != nil {
			return helper.Storage("comprobar familia", err)
		}
		if cnt > 0 {
			return helper.Conflict("%s", msgs.Conflict)
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return model.FamilyModel{}, helper.MapStoreError(err, msgs)
	}
	return m, nil
}

// Update applies a merge update: only fields present in the patch change.
func (r *FamilyRepository) Update(ctx context.Context, id string, p FamilyPatch) (model.FamilyModel, error) {
	id = NormalizeFamilyID(id)
	cols, err := p.Columns()
	if err != nil {
		return model.FamilyModel{}, err
	}

	msgs := helper.StoreMessages{
		Op:       "actualizar familia",
		NotFound: "La familia " + id + " no existe",
	}

	var out model.FamilyModel
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).Where("family_id = ?", id).First(&out).Error; err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}
		cols["family_updated_at"] = time.Now()
		if err := tx.Model(&model.FamilyModel{}).Where("family_id = ?", id).Updates(cols).Error; err != nil {
			return err
		}
		return tx.Where("family_id = ?", id).First(&out).Error
	})
	if err != nil {
		return model.FamilyModel{}, helper.MapStoreError(err, msgs)
	}
	return out, nil
}

func (r *FamilyRepository) Activate(ctx context.Context, id string) (model.FamilyModel, error) {
	st := constants.StatusActive
	return r.Update(ctx, id, FamilyPatch{Status: &st})
}

func (r *FamilyRepository) Deactivate(ctx context.Context, id string) (model.FamilyModel, error) {
	st := constants.StatusInactive
	return r.Update(ctx, id, FamilyPatch{Status: &st})
}
