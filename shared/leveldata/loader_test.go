package leveldata

import (
	"testing"
	"testing/fstest"
)

const smallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="collision" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="collision.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="32">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" x="8" y="32"/>
 </objectgroup>
</map>
`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <layer id="1" name="decor" width="2" height="1">
  <data encoding="csv">
0,0
</data>
 </layer>
</map>
`

func TestLoadCollisionData(t *testing.T) {
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(smallTMX)}}

	data, err := LoadCollisionData(fsys, "levels/small.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData() = %v", err)
	}

	if data.MapWidth != 64 || data.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", data.MapWidth, data.MapHeight)
	}
	if len(data.SolidRects) != 5 {
		t.Fatalf("len(SolidRects) = %d, want 5", len(data.SolidRects))
	}
	if got := data.SolidRects[0]; got != (SolidRect{X: 48, Y: 16, W: 16, H: 16}) {
		t.Errorf("first solid = %+v", got)
	}

	if len(data.SpawnPoints) != 2 {
		t.Fatalf("len(SpawnPoints) = %d, want 2", len(data.SpawnPoints))
	}
	if data.SpawnPoints[0].X != 8 || data.SpawnPoints[1].X != 40 {
		t.Errorf("spawns not sorted left to right: %+v", data.SpawnPoints)
	}

	sp, ok := data.Spawn(1)
	if !ok || sp.X != 40 {
		t.Errorf("Spawn(1) = %+v, %v", sp, ok)
	}
	sp, ok = data.Spawn(7)
	if !ok || sp.X != 8 {
		t.Errorf("Spawn(7) fallback = %+v, %v", sp, ok)
	}
}

func TestLoadCollisionData_Errors(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(emptyTMX)}}

	if _, err := LoadCollisionData(fsys, "levels/missing.tmx"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadCollisionData(fsys, "levels/empty.tmx"); err == nil {
		t.Error("expected error for level without solid tiles")
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(smallTMX)},
		"levels/a.tmx": {Data: []byte(smallTMX)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels() = %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v, want [a b]", names)
	}
	if levels["a"] == nil || levels["b"] == nil {
		t.Fatalf("levels = %v", levels)
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestSpawn_NoPoints(t *testing.T) {
	var d CollisionData
	if _, ok := d.Spawn(0); ok {
		t.Error("Spawn on empty data should fail")
	}
}
