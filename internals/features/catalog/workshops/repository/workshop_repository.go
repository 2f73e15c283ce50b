// file: internals/features/catalog/workshops/repository/workshop_repository.go
package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"fct_backend/internals/constants"
	familyRepo "fct_backend/internals/features/catalog/families/repository"
	"fct_backend/internals/features/catalog/workshops/model"
	helper "fct_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var workshopIDPattern = regexp.MustCompile(`^[A-Z0-9]{1,5}$`)

const workshopIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	workshopIDLen      = 5
	maxIDAttempts      = 8
	maxWorkshopNameLen = 120
	maxTitleCodeLen    = 8
	minInternshipHours = 1
)

type WorkshopFilter struct {
	Status   string
	FamilyID string
}

// NewWorkshop: ID dan Status opsional.
type NewWorkshop struct {
	ID              string
	Name            string
	FamilyID        string
	TitleCode       string
	InternshipHours int
	Status          string
}

// WorkshopPatch: nil = field tidak disentuh. There is no ID field: ids are immutable.
type WorkshopPatch struct {
	Name            *string
	FamilyID        *string
	TitleCode       *string
	InternshipHours *int
	Status          *string
}

// Columns maps the patch onto workshop columns. Only present fields appear.
func (p WorkshopPatch) Columns() (map[string]any, error) {
	cols := map[string]any{}
	if p.Name != nil {
		name, err := normalizeWorkshopName(*p.Name)
		if err != nil {
			return nil, err
		}
		cols["workshop_name"] = name
	}
	if p.FamilyID != nil {
		fid, err := normalizeFamilyRef(*p.FamilyID)
		if err != nil {
			return nil, err
		}
		cols["workshop_family_id"] = fid
	}
	if p.TitleCode != nil {
		code, err := normalizeTitleCode(*p.TitleCode)
		if err != nil {
			return nil, err
		}
		cols["workshop_title_code"] = code
	}
	if p.InternshipHours != nil {
		if err := validateHours(*p.InternshipHours); err != nil {
			return nil, err
		}
		cols["workshop_internship_hours"] = *p.InternshipHours
	}
	if p.Status != nil {
		st, err := constants.ParseStatus(*p.Status)
		if err != nil {
			return nil, helper.Validation("%s", err.Error())
		}
		cols["workshop_status"] = st
	}
	return cols, nil
}

type WorkshopRepository struct {
	db       *gorm.DB
	families *familyRepo.FamilyRepository
	newID    func() string
}

func NewWorkshopRepository(db *gorm.DB, families *familyRepo.FamilyRepository) *WorkshopRepository {
	return &WorkshopRepository{db: db, families: families, newID: GenerateWorkshopID}
}

func NormalizeWorkshopID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// GenerateWorkshopID: 5 karakter base36 dari byte acak uuid v4.
func GenerateWorkshopID() string {
	u := uuid.New()
	out := make([]byte, workshopIDLen)
	for i := range out {
		// byte 10..14 tidak membawa bit versi/varian
		out[i] = workshopIDAlphabet[int(u[10+i])%len(workshopIDAlphabet)]
	}
	return string(out)
}

func validateWorkshopID(id string) error {
	if !workshopIDPattern.MatchString(id) {
		return helper.Validation("El código de taller %q debe tener entre 1 y 5 caracteres alfanuméricos", id)
	}
	return nil
}

func normalizeWorkshopName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", helper.Validation("El nombre del taller es obligatorio")
	}
	if len([]rune(name)) > maxWorkshopNameLen {
		return "", helper.Validation("El nombre del taller supera %d caracteres", maxWorkshopNameLen)
	}
	return name, nil
}

// normalizeFamilyRef: format tidak dicek di sini, family yang tidak ada
// dilaporkan sebagai NotFound oleh lookup.
func normalizeFamilyRef(id string) (string, error) {
	id = familyRepo.NormalizeFamilyID(id)
	if id == "" {
		return "", helper.Validation("El código de familia es obligatorio")
	}
	return id, nil
}

func normalizeTitleCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", helper.Validation("El código de título es obligatorio")
	}
	if len([]rune(code)) > maxTitleCodeLen {
		return "", helper.Validation("El código de título supera %d caracteres", maxTitleCodeLen)
	}
	return code, nil
}

func validateHours(h int) error {
	if h < minInternshipHours {
		return helper.Validation("Las horas de prácticas deben ser al menos %d", minInternshipHours)
	}
	return nil
}

func (r *WorkshopRepository) List(ctx context.Context, f WorkshopFilter) ([]model.WorkshopWithFamily, error) {
	q := r.db.WithContext(ctx).Model(&model.WorkshopModel{})
	if strings.TrimSpace(f.Status) != "" {
		st, err := constants.ParseStatus(f.Status)
		if err != nil {
			return nil, helper.Validation("%s", err.Error())
		}
		q = q.Where("workshop_status = ?", st)
	}
	if strings.TrimSpace(f.FamilyID) != "" {
		q = q.Where("workshop_family_id = ?", familyRepo.NormalizeFamilyID(f.FamilyID))
	}

	var rows []model.WorkshopModel
	if err := q.Order("workshop_id ASC").Find(&rows).Error; err != nil {
		return nil, helper.Storage("listar talleres", err)
	}
	return r.resolveFamilies(ctx, rows)
}

func (r *WorkshopRepository) Get(ctx context.Context, id string) (model.WorkshopWithFamily, error) {
	id = NormalizeWorkshopID(id)
	var row model.WorkshopModel
	if err := r.db.WithContext(ctx).Where("workshop_id = ?", id).First(&row).Error; err != nil {
		return model.WorkshopWithFamily{}, helper.MapStoreError(err, helper.StoreMessages{
			Op:       "obtener taller",
			NotFound: "El taller " + id + " no existe",
		})
	}
	out, err := r.resolveFamilies(ctx, []model.WorkshopModel{row})
	if err != nil {
		return model.WorkshopWithFamily{}, err
	}
	return out[0], nil
}

// resolveFamilies attaches the full family to every workshop with one lookup.
func (r *WorkshopRepository) resolveFamilies(ctx context.Context, rows []model.WorkshopModel) ([]model.WorkshopWithFamily, error) {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.WorkshopFamilyID)
	}
	fams, err := r.families.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.WorkshopWithFamily, 0, len(rows))
	for _, row := range rows {
		fam, ok := fams[row.WorkshopFamilyID]
		if !ok {
			return nil, helper.Storage("resolver familias",
				fmt.Errorf("workshop %s references missing family %s", row.WorkshopID, row.WorkshopFamilyID))
		}
		out = append(out, model.WorkshopWithFamily{Workshop: row, Family: fam})
	}
	return out, nil
}

func (r *WorkshopRepository) Create(ctx context.Context, in NewWorkshop) (model.WorkshopWithFamily, error) {
	m, err := newWorkshopModel(in)
	if err != nil {
		return model.WorkshopWithFamily{}, err
	}
	explicitID := m.WorkshopID != ""

	titleConflict := "Ya existe un taller con el código de título " + m.WorkshopTitleCode
	msgs := helper.StoreMessages{Op: "crear taller", Conflict: titleConflict}
	if explicitID {
		msgs.Conflict = "Ya existe un taller con el código " + m.WorkshopID + " o el código de título " + m.WorkshopTitleCode
	}

	var out model.WorkshopWithFamily
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fam, err := r.families.WithTx(tx).Get(ctx, m.WorkshopFamilyID)
		if err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&model.WorkshopModel{}).
			Where("workshop_title_code = ?", m.WorkshopTitleCode).
			Count(&cnt).Error; err != nil {
			return helper.Storage("comprobar código de título", err)
		}
		if cnt > 0 {
			return helper.Conflict("%s", titleConflict)
		}

		if explicitID {
			taken, err := workshopIDTaken(tx, m.WorkshopID)
			if err != nil {
				return err
			}
			if taken {
				return helper.Conflict("El taller %s ya existe", m.WorkshopID)
			}
		} else if m.WorkshopID, err = r.freeWorkshopID(tx); err != nil {
			return err
		}

		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		out = model.WorkshopWithFamily{Workshop: m, Family: fam}
		return nil
	})
	if err != nil {
		return model.WorkshopWithFamily{}, helper.MapStoreError(err, msgs)
	}
	return out, nil
}

func workshopIDTaken(tx *gorm.DB, id string) (bool, error) {
	var cnt int64
	if err := tx.Model(&model.WorkshopModel{}).Where("workshop_id = ?", id).Count(&cnt).Error; err != nil {
		return false, helper.Storage("comprobar taller", err)
	}
	return cnt > 0, nil
}

// freeWorkshopID generates ids until one is unused inside tx.
func (r *WorkshopRepository) freeWorkshopID(tx *gorm.DB) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := r.newID()
		taken, err := workshopIDTaken(tx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", helper.Storage("generar código de taller",
		fmt.Errorf("no free workshop id after %d attempts", maxIDAttempts))
}

func newWorkshopModel(in NewWorkshop) (model.WorkshopModel, error) {
	m := model.WorkshopModel{
		WorkshopID:              NormalizeWorkshopID(in.ID),
		WorkshopInternshipHours: in.InternshipHours,
		WorkshopStatus:          constants.StatusActive,
	}
	if m.WorkshopID != "" {
		if err := validateWorkshopID(m.WorkshopID); err != nil {
			return m, err
		}
	}

	var err error
	if m.WorkshopFamilyID, err = normalizeFamilyRef(in.FamilyID); err != nil {
		return m, err
	}
	if m.WorkshopName, err = normalizeWorkshopName(in.Name); err != nil {
		return m, err
	}
	if m.WorkshopTitleCode, err = normalizeTitleCode(in.TitleCode); err != nil {
		return m, err
	}
	if err := validateHours(in.InternshipHours); err != nil {
		return m, err
	}
	if strings.TrimSpace(in.Status) != "" {
		st, err := constants.ParseStatus(in.Status)
		if err != nil {
			return m, helper.Validation("%s", err.Error())
		}
		m.WorkshopStatus = st
	}
	return m, nil
}

// Update applies a merge update: only fields present in the patch change,
// the family is re-resolved when it is part of the patch.
func (r *WorkshopRepository) Update(ctx context.Context, id string, p WorkshopPatch) (model.WorkshopWithFamily, error) {
	id = NormalizeWorkshopID(id)
	cols, err := p.Columns()
	if err != nil {
		return model.WorkshopWithFamily{}, err
	}

	msgs := helper.StoreMessages{
		Op:       "actualizar taller",
		NotFound: "El taller " + id + " no existe",
	}
	if code, ok := cols["workshop_title_code"].(string); ok {
		msgs.Conflict = "Ya existe un taller con el código de título " + code
	}

	var out model.WorkshopWithFamily
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.WorkshopModel
		if err := helper.LockForUpdate(tx).Where("workshop_id = ?", id).First(&cur).Error; err != nil {
			return err
		}

		families := r.families.WithTx(tx)
		familyID := cur.WorkshopFamilyID
		if fid, ok := cols["workshop_family_id"].(string); ok {
			familyID = fid
		}
		fam, err := families.Get(ctx, familyID)
		if err != nil {
			return err
		}

		if code, ok := cols["workshop_title_code"].(string); ok && code != cur.WorkshopTitleCode {
			var cnt int64
			if err := tx.Model(&model.WorkshopModel{}).
				Where("workshop_title_code = ? AND workshop_id <> ?", code, id).
				Count(&cnt).Error; err != nil {
				return helper.Storage("comprobar código de título", err)
			}
			if cnt > 0 {
				return helper.Conflict("%s", msgs.Conflict)
			}
		}

		if len(cols) > 0 {
			cols["workshop_updated_at"] = time.Now()
			if err := tx.Model(&model.WorkshopModel{}).Where("workshop_id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
			if err := tx.Where("workshop_id = ?", id).First(&cur).Error; err != nil {
				return err
			}
		}
		out = model.WorkshopWithFamily{Workshop: cur, Family: fam}
		return nil
	})
	if err != nil {
		return model.WorkshopWithFamily{}, helper.MapStoreError(err, msgs)
	}
	return out, nil
}

func (r *WorkshopRepository) Activate(ctx context.Context, id string) (model.WorkshopWithFamily, error) {
	st := constants.StatusActive
	return r.Update(ctx, id, WorkshopPatch{Status: &st})
}

func (r *WorkshopRepository) Deactivate(ctx context.Context, id string) (model.WorkshopWithFamily, error) {
	st := constants.StatusInactive
	return r.Update(ctx, id, WorkshopPatch{Status: &st})
}
