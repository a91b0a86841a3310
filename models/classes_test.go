package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassSetCardinality(t *testing.T) {
	assert.Equal(t, 20, VOCClasses.Len())
	assert.Equal(t, 91, COCOClasses.Len())
	assert.Equal(t, "unlabeled", LookupName(ModelFamilyCOCO, 0))
	assert.Equal(t, "aeroplane", LookupName(ModelFamilyVOC, 0))
	assert.Equal(t, "tvmonitor", LookupName(ModelFamilyVOC, 19))
	assert.Equal(t, "toothbrush", LookupName(ModelFamilyCOCO, 90))
}

func TestClassSetIDMapIsBijection(t *testing.T) {
	for _, set := range AllClassSets {
		t.Run(set.Family().String(), func(t *testing.T) {
			names := set.Names()
			ids := set.IDMap()
			nameSet := set.NameSet()

			require.Len(t, ids, len(names), "duplicate names in %s", set.Family())
			require.Len(t, nameSet, len(names))

			seen := make(map[int]bool, len(names))
			for i, name := range names {
				assert.Equal(t, i, ids[name])
				cls, ok := set.Class(i)
				require.True(t, ok)
				assert.Equal(t, OutputClass{Index: i, Name: name}, cls)
				assert.Contains(t, nameSet, name)
				assert.True(t, set.Contains(name))
				seen[ids[name]] = true
			}
			for i := 0; i < len(names); i++ {
				assert.True(t, seen[i], "id %d not covered", i)
			}
		})
	}
}

func TestClassSetCopiesAreIndependent(t *testing.T) {
	names := VOCClasses.Names()
	names[0] = "zeppelin"
	ids := VOCClasses.IDMap()
	ids["zeppelin"] = 0

	classes := VOCClasses.Classes()
	classes[0].Name = "zeppelin"

	assert.Equal(t, "aeroplane", VOCClasses.Names()[0])
	assert.False(t, VOCClasses.Contains("zeppelin"))

	cls, ok := VOCClasses.Class(0)
	require.True(t, ok)
	assert.Equal(t, "aeroplane", cls.Name)
	idx, ok := VOCClasses.Index("aeroplane")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	reg := NewRegistry(Config{Seeded: true, Seed: 5})
	_, ok = reg.VOCLabelColor("aeroplane")
	assert.True(t, ok)
}

func TestOutputClassSetClassOutOfRange(t *testing.T) {
	_, ok := VOCClasses.Class(-1)
	assert.False(t, ok)
	_, ok = VOCClasses.Class(VOCClasses.Len())
	assert.False(t, ok)
}

func TestNewOutputClassSet(t *testing.T) {
	set := NewOutputClassSet(ModelFamily("custom"), "cat", "dog")
	assert.Equal(t, ModelFamily("custom"), set.Family())
	assert.Equal(t, []string{"cat", "dog"}, set.Names())

	mgr := NewClassManager(set)
	idx, err := mgr.GetIndex(ModelFamily("custom"), "dog")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestClassManager(t *testing.T) {
	mgr := NewClassManager(VOCClasses, COCOClasses)

	name, err := mgr.GetName(ModelFamilyCOCO, 4)
	require.NoError(t, err)
	assert.Equal(t, "motorcycle", name)

	idx, err := mgr.GetIndex(ModelFamilyVOC, "person")
	require.NoError(t, err)
	assert.Equal(t, 14, idx)

	_, err = mgr.GetName(ModelFamilyVOC, 20)
	assert.Error(t, err)
	_, err = mgr.GetName(ModelFamily("yolo"), 0)
	assert.Error(t, err)
	_, err = mgr.GetIndex(ModelFamilyVOC, "elephant")
	assert.Error(t, err)
}

func TestClassManagerMapClass(t *testing.T) {
	mgr := NewClassManager(VOCClasses, COCOClasses)

	tests := []struct {
		name    string
		from    ModelFamily
		idx     int
		to      ModelFamily
		want    OutputClass
		wantErr bool
	}{
		{name: "alias", from: ModelFamilyCOCO, idx: 5, to: ModelFamilyVOC, want: OutputClass{Index: 0, Name: "aeroplane"}},
		{name: "couch", from: ModelFamilyCOCO, idx: 63, to: ModelFamilyVOC, want: OutputClass{Index: 17, Name: "sofa"}},
		{name: "same name", from: ModelFamilyCOCO, idx: 1, to: ModelFamilyVOC, want: OutputClass{Index: 14, Name: "person"}},
		{name: "voc to coco", from: ModelFamilyVOC, idx: 6, to: ModelFamilyCOCO, want: OutputClass{Index: 3, Name: "car"}},
		{name: "no counterpart", from: ModelFamilyCOCO, idx: 22, to: ModelFamilyVOC, wantErr: true},
		{name: "no reverse alias", from: ModelFamilyVOC, idx: 0, to: ModelFamilyCOCO, wantErr: true},
		{name: "out of range", from: ModelFamilyCOCO, idx: 91, to: ModelFamilyVOC, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mgr.MapClass(tt.from, tt.idx, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupName(t *testing.T) {
	assert.Equal(t, "street sign", LookupName(ModelFamilyCOCO, 12))
	assert.Equal(t, "sofa", LookupName(ModelFamilyVOC, 17))
	assert.Equal(t, "", LookupName(ModelFamilyVOC, -1))
	assert.Equal(t, "", LookupName(ModelFamily("tf"), 1))
}

func TestParseModelFamily(t *testing.T) {
	f, ok := ParseModelFamily("voc")
	assert.True(t, ok)
	assert.Equal(t, ModelFamilyVOC, f)

	_, ok = ParseModelFamily("imagenet")
	assert.False(t, ok)
}
