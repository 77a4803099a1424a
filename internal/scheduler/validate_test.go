package scheduler

import (
	"testing"

	"github.com/mhutchins/crewcal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTemplate_Valid(t *testing.T) {
	items := []domain.PhaseTemplateItem{
		item("a", "Foundation", 5, 0),
		withPred(item("b", "Framing", 10, 1), "a", 1),
		withPred(item("c", "Roofing", 4, 2), "b", 0),
	}
	assert.NoError(t, ValidateTemplate(items))
}

func TestValidateTemplate_EmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateTemplate(nil))
}

func TestValidateTemplate_UnknownPredecessor(t *testing.T) {
	items := []domain.PhaseTemplateItem{
		withPred(item("a", "Framing", 10, 0), "missing", 0),
	}
	err := ValidateTemplate(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Contains(t, err.Error(), "unknown predecessor")
}

func TestValidateTemplate_PredecessorAfterSuccessor(t *testing.T) {
	items := []domain.PhaseTemplateItem{
		withPred(item("b", "Framing", 10, 0), "a", 0),
		item("a", "Foundation", 5, 1),
	}
	err := ValidateTemplate(items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestValidateTemplate_SelfReference(t *testing.T) {
	items := []domain.PhaseTemplateItem{
		withPred(item("a", "Framing", 10, 0), "a", 0),
	}
	assert.ErrorIs(t, ValidateTemplate(items), ErrInvalidTemplate)
}

func TestValidateTemplate_DuplicateID(t *testing.T) {
	items := []domain.PhaseTemplateItem{
		item("a", "Foundation", 5, 0),
		item("a", "Framing", 10, 1),
	}
	assert.ErrorIs(t, ValidateTemplate(items), ErrInvalidTemplate)
}

func TestValidateTemplate_NegativeLag(t *testing.T) {
	items := []domain.PhaseTemplateItem{
		item("a", "Foundation", 5, 0),
		withPred(item("b", "Framing", 10, 1), "a", -1),
	}
	assert.ErrorIs(t, ValidateTemplate(items), ErrInvalidTemplate)
}

func TestValidateTemplate_MissingID(t *testing.T) {
	items := []domain.PhaseTemplateItem{item("", "Foundation", 5, 0)}
	assert.ErrorIs(t, ValidateTemplate(items), ErrInvalidTemplate)
}
