package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bem-translator/internal/schema"
)

func newCurve(t *testing.T, ws *Workspace, name string, coeffs ...float64) *Record {
	t.Helper()

	rec, err := ws.NewRecord("Curve:Cubic")
	require.NoError(t, err)
	require.NoError(t, rec.SetName(name))

	for i, c := range coeffs {
		require.NoError(t, rec.SetDouble(i, c))
	}

	return rec
}

func TestRecord_Setters(t *testing.T) {
	ws := New(schema.Default())
	rec := newCurve(t, ws, "Curve1", 1, 2.5)

	assert.Equal(t, "Curve:Cubic", rec.Type())
	assert.Equal(t, "Curve1", rec.Name())
	assert.Equal(t, 10, rec.NumFields())
	assert.Equal(t, -1, rec.Index())
	assert.Equal(t, "2.5", rec.String(1))

	f, ok := rec.Double(1)
	assert.True(t, ok)
	assert.InDelta(t, 2.5, f, 0)

	_, ok = rec.Double(2)
	assert.False(t, ok)

	require.NoError(t, rec.SetByName("minimum value of x", "0"))
	assert.Equal(t, "0", rec.String(4))
	assert.Equal(t, "0", rec.Get("Minimum Value of x"))

	assert.ErrorIs(t, rec.SetByName("Coefficient9", "1"), ErrUnknownField)
	assert.ErrorIs(t, rec.SetString(10, "1"), ErrFieldIndex)
	assert.ErrorIs(t, rec.SetString(0, "1,2"), ErrInvalidValue)
	assert.ErrorIs(t, rec.PushGroup("x"), ErrNotExtensible)
}

func TestRecord_SealedAfterAdd(t *testing.T) {
	ws := New(schema.Default())
	rec := newCurve(t, ws, "Curve1")
	require.NoError(t, ws.Add(rec))

	assert.True(t, rec.Sealed())
	assert.Equal(t, 0, rec.Index())
	assert.ErrorIs(t, rec.SetDouble(0, 1), ErrSealed)
	assert.ErrorIs(t, rec.SetName("Other"), ErrSealed)
	assert.ErrorIs(t, ws.Add(rec), ErrSealed)
}

func TestRecord_Groups(t *testing.T) {
	ws := New(schema.Default())
	rec, err := ws.NewRecord("Construction")
	require.NoError(t, err)
	require.NoError(t, rec.SetName("Wall"))

	require.NoError(t, rec.PushGroup("Brick"))
	require.NoError(t, rec.PushGroup("Insulation"))
	assert.ErrorIs(t, rec.PushGroup("a", "b"), ErrGroupArity)

	assert.Equal(t, [][]string{{"Brick"}, {"Insulation"}}, rec.Groups())
	assert.Equal(t, []string{"Brick", "Insulation"}, rec.Fields())

	refs := rec.References()
	require.Len(t, refs, 2)
	assert.Equal(t, "Insulation", refs[1].Name)
	assert.Equal(t, 1, refs[1].Position)
	assert.Equal(t, []string{"Material"}, refs[1].Field.Refs)
}

func TestRecord_UnnamedType(t *testing.T) {
	ws := New(schema.Default())
	rec, err := ws.NewRecord("GlobalGeometryRules")
	require.NoError(t, err)

	assert.ErrorIs(t, rec.SetName("Rules"), ErrUnnamedType)
	require.NoError(t, ws.Add(rec))

	second, err := ws.NewRecord("GlobalGeometryRules")
	require.NoError(t, err)
	require.NoError(t, ws.Add(second))
	assert.Len(t, ws.RecordsOfType("globalgeometryrules"), 2)
}

func TestWorkspace_NewRecordUnknownType(t *testing.T) {
	ws := New(schema.Default())

	_, err := ws.NewRecord("Curve:Cubik")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "did you mean Curve:Cubic")
}

func TestWorkspace_DuplicateNames(t *testing.T) {
	ws := New(schema.Default())
	require.NoError(t, ws.Add(newCurve(t, ws, "Curve1")))

	err := ws.Add(newCurve(t, ws, "CURVE1"))
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, ws.Len())

	quad, err := ws.NewRecord("Curve:Quadratic")
	require.NoError(t, err)
	require.NoError(t, quad.SetName("Curve1"))
	require.NoError(t, ws.Add(quad), "names are unique per type")

	missing, err := ws.NewRecord("Zone")
	require.NoError(t, err)
	require.ErrorIs(t, ws.Add(missing), ErrMissingName)
}

func TestWorkspace_Lookup(t *testing.T) {
	ws := New(schema.Default())
	curve := newCurve(t, ws, "Curve1")
	require.NoError(t, ws.Add(curve))

	got, ok := ws.Lookup("curve:cubic", "curve1")
	require.True(t, ok)
	assert.Same(t, curve, got)

	got, ok = ws.LookupAny("Curve1", "Curve:Quadratic", "Curve:Cubic")
	require.True(t, ok)
	assert.Same(t, curve, got)

	_, ok = ws.LookupAny("Curve1", "Curve:Quadratic")
	assert.False(t, ok)
}

func TestWorkspace_ReserveAndUniqueName(t *testing.T) {
	ws := New(schema.Default())
	require.NoError(t, ws.Add(newCurve(t, ws, "Curve")))

	assert.Equal(t, "Curve 1", ws.UniqueName("Curve:Cubic", "Curve"))
	assert.Equal(t, "Curve", ws.UniqueName("Curve:Quadratic", "Curve"))

	require.True(t, ws.Reserve("Curve:Cubic", "Curve 1"))
	assert.False(t, ws.Reserve("Curve:Cubic", "curve 1"))
	assert.False(t, ws.Reserve("Curve:Cubic", "Curve"))
	assert.Equal(t, "Curve 2", ws.UniqueName("Curve:Cubic", "Curve"))

	ws.Release("Curve:Cubic", "Curve 1")
	assert.Equal(t, "Curve 1", ws.UniqueName("Curve:Cubic", "Curve"))
	require.True(t, ws.Reserve("Curve:Cubic", "Curve 1"))

	// The reserving record may still be added under its name.
	require.NoError(t, ws.Add(newCurve(t, ws, "Curve 1")))
	assert.Equal(t, "Curve 2", ws.UniqueName("Curve:Cubic", "Curve"))
}
