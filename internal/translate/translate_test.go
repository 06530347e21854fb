package translate

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bem-translator/internal/ctxlog"
	"bem-translator/internal/model"
	"bem-translator/internal/schema"
)

func TestTranslateModelObject(t *testing.T) {
	m, _, coil := coilModel(t)
	m.MustNewObject(model.TypeThermalZone, "Zone 1")

	reg, _ := newTestRegistry()
	res, err := TranslateModelObject(context.Background(), reg, schema.Default(), coil)
	require.NoError(t, err)

	require.NotNil(t, res.Record)
	assert.Equal(t, "Coil 1", res.Record.Name())
	assert.Equal(t, 3, res.Workspace.Len())
	assert.Empty(t, res.Workspace.RecordsOfType("Zone"))
	assert.Empty(t, res.Diagnostics.Items)

	// The source model is not touched.
	assert.Equal(t, 4, m.Len())
}

func TestTranslateModelObject_RequiredReferenceWithoutHandler(t *testing.T) {
	_, _, coil := coilModel(t)

	reg, _ := newTestRegistry(model.TypeScheduleConstant)
	res, err := TranslateModelObject(context.Background(), reg, schema.Default(), coil)
	require.NoError(t, err)

	assert.Nil(t, res.Record)
	assert.Equal(t, 0, res.Workspace.Len())
	require.Len(t, res.Diagnostics.Items, 1)
	assert.Equal(t, coil.Description(), res.Diagnostics.Items[0].Subject)
	assert.Equal(t, CodeUnresolvedReference, res.Diagnostics.Items[0].Code)
}

func TestTranslateWorkspaceObject(t *testing.T) {
	ws := coilWorkspace(t)
	addRecord(t, ws, "Building", "Building 1")

	coil, ok := ws.Lookup("Coil:Heating:Electric", "Coil 2")
	require.True(t, ok)

	reg, _ := newTestRegistry()
	res, err := TranslateWorkspaceObject(context.Background(), reg, schema.Default(), ws, coil)
	require.NoError(t, err)

	require.NotNil(t, res.Object)
	assert.Equal(t, "Coil 2", res.Object.Name())
	assert.Equal(t, 3, res.Model.Len())
	assert.Nil(t, res.Model.Unique(model.TypeBuilding))
	assert.Empty(t, res.Diagnostics.Items)
}

func TestTranslate_LogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", &buf))

	m := model.New()
	m.MustNewObject(model.TypeSpaceType, "Office")

	reg, _ := newTestRegistry()
	TranslateModel(ctx, reg, schema.Default(), m)

	assert.Contains(t, buf.String(), "Object not translated.")
	assert.Contains(t, buf.String(), "code=untranslated")
	assert.Contains(t, buf.String(), "type=OS:SpaceType")
}

func TestWithMaxDepth_IgnoresNonPositive(t *testing.T) {
	o := buildOptions([]Option{WithMaxDepth(0)})
	assert.Equal(t, DefaultMaxDepth, o.MaxDepth)

	o = buildOptions([]Option{WithMaxDepth(3)})
	assert.Equal(t, 3, o.MaxDepth)
}
