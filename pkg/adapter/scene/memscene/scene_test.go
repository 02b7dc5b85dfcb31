// 指示: PakkanenAnastacia
package memscene

import (
	"strings"
	"testing"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// newSceneWithArmature はアーマチュアと編集モードの下準備を行う。
func newSceneWithArmature(t *testing.T) *MemScene {
	t.Helper()
	scene := NewMemScene()
	if err := scene.CreateArmature("Armature_test"); err != nil {
		t.Fatalf("create armature failed: %v", err)
	}
	return scene
}

func TestCreateArmatureRequiresObjectMode(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateArmature("Armature_other"); err == nil {
		t.Fatalf("create armature should require object mode")
	}
}

func TestCreateBoneRequiresEditMode(t *testing.T) {
	scene := newSceneWithArmature(t)
	bone := mscene.BoneDefinition{Name: "root"}
	if err := scene.CreateBone("Armature_test", bone); err == nil {
		t.Fatalf("create bone should require edit mode")
	}
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateBone("Armature_test", bone); err != nil {
		t.Fatalf("create bone failed: %v", err)
	}
	if err := scene.CreateBone("Armature_test", bone); err == nil {
		t.Fatalf("duplicate bone should be rejected")
	}
}

func TestCreateBoneRequiresExistingParent(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	orphan := mscene.BoneDefinition{Name: "child", ParentName: "missing"}
	if err := scene.CreateBone("Armature_test", orphan); err == nil {
		t.Fatalf("missing parent should be rejected")
	}
}

func TestParentMeshToBone(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateBone("Armature_test", mscene.BoneDefinition{Name: "root"}); err != nil {
		t.Fatalf("create bone failed: %v", err)
	}
	if err := scene.SetMode("Armature_test", mscene.EditorModeObject); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateMesh(mscene.MeshDefinition{Name: "body"}); err != nil {
		t.Fatalf("create mesh failed: %v", err)
	}

	if err := scene.ParentMeshToBone("missing", "Armature_test", "root"); err == nil {
		t.Fatalf("missing mesh should be rejected")
	}
	if err := scene.ParentMeshToBone("body", "Armature_test", "missing"); err == nil {
		t.Fatalf("missing bone should be rejected")
	}
	if err := scene.ParentMeshToBone("body", "Armature_test", "root"); err != nil {
		t.Fatalf("parent failed: %v", err)
	}
	mesh := scene.Mesh("body")
	if mesh.ParentArmature != "Armature_test" || mesh.ParentBone != "root" {
		t.Fatalf("parent mismatch: %+v", mesh)
	}
}

func TestAttachCustomShapeRequiresPoseAndShape(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateBone("Armature_test", mscene.BoneDefinition{Name: "root"}); err != nil {
		t.Fatalf("create bone failed: %v", err)
	}
	if err := scene.SetMode("Armature_test", mscene.EditorModeObject); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateMesh(mscene.MeshDefinition{Name: "shape"}); err != nil {
		t.Fatalf("create mesh failed: %v", err)
	}

	if err := scene.AttachCustomShape("Armature_test", "root", "shape", 0.5); err == nil {
		t.Fatalf("attach should require pose mode")
	}
	if err := scene.SetMode("Armature_test", mscene.EditorModePose); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.AttachCustomShape("Armature_test", "root", "missing", 0.5); err == nil {
		t.Fatalf("missing shape should be rejected")
	}
	if err := scene.AttachCustomShape("Armature_test", "root", "shape", 0.5); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	bone := scene.Bone("Armature_test", "root")
	if bone.CustomShapeName != "shape" || bone.CustomShapeScale != 0.5 {
		t.Fatalf("shape mismatch: %+v", bone)
	}
}

func TestIkConstraintRequiresTargetAndPoleBones(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	for _, name := range []string{"shin", "ik_ctrl", "pole_ctrl"} {
		if err := scene.CreateBone("Armature_test", mscene.BoneDefinition{Name: name}); err != nil {
			t.Fatalf("create bone failed: %v", err)
		}
	}
	if err := scene.SetMode("Armature_test", mscene.EditorModePose); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}

	missingTarget := mscene.IkConstraint{TargetArmature: "Armature_test", TargetBone: "missing", ChainCount: 2}
	if err := scene.AddIkConstraint("Armature_test", "shin", missingTarget); err == nil {
		t.Fatalf("missing target should be rejected")
	}
	missingPole := mscene.IkConstraint{
		TargetArmature: "Armature_test", TargetBone: "ik_ctrl", ChainCount: 2,
		PoleArmature: "Armature_test", PoleBone: "missing",
	}
	if err := scene.AddIkConstraint("Armature_test", "shin", missingPole); err == nil {
		t.Fatalf("missing pole should be rejected")
	}
	valid := mscene.IkConstraint{
		TargetArmature: "Armature_test", TargetBone: "ik_ctrl", ChainCount: 2,
		PoleArmature: "Armature_test", PoleBone: "pole_ctrl", PoleAngleDeg: 180,
	}
	if err := scene.AddIkConstraint("Armature_test", "shin", valid); err != nil {
		t.Fatalf("add ik failed: %v", err)
	}
	if len(scene.Bone("Armature_test", "shin").IkConstraints) != 1 {
		t.Fatalf("ik constraint not stored")
	}
}

func TestBoneGroupsAndLayers(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateBone("Armature_test", mscene.BoneDefinition{Name: "root"}); err != nil {
		t.Fatalf("create bone failed: %v", err)
	}

	if err := scene.AssignBoneGroup("Armature_test", "root", "ARM"); err == nil {
		t.Fatalf("missing group should be rejected")
	}
	if err := scene.CreateBoneGroup("Armature_test", "ARM", "THEME05"); err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	if err := scene.CreateBoneGroup("Armature_test", "ARM", "THEME05"); err == nil {
		t.Fatalf("duplicate group should be rejected")
	}
	if err := scene.AssignBoneGroup("Armature_test", "root", "ARM"); err != nil {
		t.Fatalf("assign group failed: %v", err)
	}

	if err := scene.AssignBoneLayers("Armature_test", "root", []int{0, 31}); err != nil {
		t.Fatalf("assign layers failed: %v", err)
	}
	if err := scene.AssignBoneLayers("Armature_test", "root", []int{32}); err == nil {
		t.Fatalf("out of range layer should be rejected")
	}
	bone := scene.Bone("Armature_test", "root")
	if bone.GroupName != "ARM" || len(bone.Layers) != 2 {
		t.Fatalf("bone state mismatch: %+v", bone)
	}
}

func TestCollectionLinkUnlink(t *testing.T) {
	scene := NewMemScene()
	if err := scene.CreateMesh(mscene.MeshDefinition{Name: "body", Location: mmath.NewVec3(0, 0, 0)}); err != nil {
		t.Fatalf("create mesh failed: %v", err)
	}

	if err := scene.CreateCollection("COLL"); err != nil {
		t.Fatalf("create collection failed: %v", err)
	}
	if err := scene.CreateCollection("COLL"); err == nil {
		t.Fatalf("duplicate collection should be rejected")
	}
	if err := scene.LinkObjectToCollection("missing", "body"); err == nil {
		t.Fatalf("missing collection should be rejected")
	}
	if err := scene.LinkObjectToCollection("COLL", "body"); err != nil {
		t.Fatalf("link failed: %v", err)
	}

	// 生成時にシーンルートへ接続されている
	if len(scene.SceneRoot()) != 1 || scene.SceneRoot()[0] != "body" {
		t.Fatalf("scene root mismatch: %v", scene.SceneRoot())
	}
	if err := scene.UnlinkObjectFromCollection("", "body"); err != nil {
		t.Fatalf("unlink from root failed: %v", err)
	}
	if err := scene.UnlinkObjectFromCollection("", "body"); err == nil {
		t.Fatalf("double unlink should be rejected")
	}
	if len(scene.SceneRoot()) != 0 {
		t.Fatalf("scene root should be empty: %v", scene.SceneRoot())
	}

	objects, ok := scene.Collection("COLL")
	if !ok || len(objects) != 1 || objects[0] != "body" {
		t.Fatalf("collection mismatch: %v", objects)
	}
}

func TestOpsRecordExecutionOrder(t *testing.T) {
	scene := newSceneWithArmature(t)
	if err := scene.SetMode("Armature_test", mscene.EditorModeEdit); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if err := scene.CreateBone("Armature_test", mscene.BoneDefinition{Name: "root"}); err != nil {
		t.Fatalf("create bone failed: %v", err)
	}

	ops := scene.Ops()
	if len(ops) != 3 {
		t.Fatalf("ops count mismatch: %v", ops)
	}
	if !strings.HasPrefix(ops[0], "create_armature:") ||
		!strings.HasPrefix(ops[1], "set_mode:") ||
		!strings.HasPrefix(ops[2], "create_bone:") {
		t.Fatalf("ops order mismatch: %v", ops)
	}
}
