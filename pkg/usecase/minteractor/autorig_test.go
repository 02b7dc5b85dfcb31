// 指示: PakkanenAnastacia
package minteractor

import (
	"strings"
	"testing"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/adapter/scene/memscene"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// testHumanoid は全リガー種別を通る人型ツリーを生成する。
func testHumanoid() *model.BoxmanNode {
	return testNode("hero", model.OrientationCenter, model.JointTypeObjectRoot, mmath.NewVec3(0, 0, 0),
		testNode("spine", model.OrientationCenter, model.JointTypeSpineRoot, mmath.NewVec3(0, 0, 1),
			testNode("chest", model.OrientationCenter, model.JointTypeSpineSection, mmath.NewVec3(0, 0, 1.2),
				testNode("neck", model.OrientationCenter, model.JointTypeNeckRoot, mmath.NewVec3(0, 0, 1.5),
					testNode("head", model.OrientationCenter, model.JointTypeHead, mmath.NewVec3(0, 0, 1.7))),
				testArm(model.OrientationLeft),
				testArm(model.OrientationRight))),
		testLeg(model.OrientationLeft),
		testLeg(model.OrientationRight),
		testNode("tail_base", model.OrientationCenter, model.JointTypeChainRoot, mmath.NewVec3(0, 0.3, 1),
			testNode("tail1", model.OrientationCenter, model.JointTypeChainSegment, mmath.NewVec3(0, 0.6, 1),
				testNode("tail2", model.OrientationCenter, model.JointTypeChainSegment, mmath.NewVec3(0, 0.9, 1)))))
}

type recordingReporter struct {
	events []AutoRigProgressEvent
}

func (r *recordingReporter) ReportAutoRigProgress(event AutoRigProgressEvent) {
	r.events = append(r.events, event)
}

// rigHumanoid はメモリ内シーンへ人型ツリーを一括合成する。
func rigHumanoid(t *testing.T) (*memscene.MemScene, *AutoRigResult, *recordingReporter) {
	t.Helper()
	root := testHumanoid()
	scene := memscene.NewMemScene()
	usecase := NewAutoRigUsecase(scene)
	if err := usecase.InsertTree(root); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	reporter := &recordingReporter{}
	result, err := usecase.AutoRig(AutoRigRequest{Root: root, ProgressReporter: reporter})
	if err != nil {
		t.Fatalf("auto rig failed: %v", err)
	}
	return scene, result, reporter
}

func TestAutoRigBuildsHumanoidSkeleton(t *testing.T) {
	scene, result, _ := rigHumanoid(t)

	if result.ArmatureName != "Armature_hero" {
		t.Fatalf("armature name mismatch: %s", result.ArmatureName)
	}
	armature := scene.Armature("Armature_hero")
	if armature == nil {
		t.Fatalf("armature not created")
	}
	if len(armature.BoneOrder) != result.BoneCount {
		t.Fatalf("bone count mismatch: %d != %d", len(armature.BoneOrder), result.BoneCount)
	}
	if armature.DisplayType != mscene.ArmatureDisplayStick || !armature.ShowInFront {
		t.Fatalf("display mismatch: %s front=%t", armature.DisplayType, armature.ShowInFront)
	}
	if scene.Mode() != mscene.EditorModeObject {
		t.Fatalf("final mode mismatch: %s", scene.Mode())
	}

	// 代表的なボーンと両側の対称性
	for _, name := range []string{
		"bxm.C.hero", "bxm.C.spine", "bxm.C.spine_CTRL", "bxm.C.neck_CTRL", "bxm.C.head",
		"bxm.L.shoulder_CTRL", "bxm.R.shoulder_CTRL",
		"bxm.L.elbow_POLE_CTRL", "bxm.R.elbow_POLE_CTRL",
		"bxm.L.hand_IK_CTRL", "bxm.R.hand_IK_CTRL",
		"bxm.L.knee_POLE_CTRL", "bxm.R.foot_IK_CTRL",
		"bxm.C.tail2_IK_CTRL",
	} {
		if scene.Bone("Armature_hero", name) == nil {
			t.Fatalf("bone %s not created", name)
		}
	}
}

func TestAutoRigModeSequence(t *testing.T) {
	scene, _, _ := rigHumanoid(t)

	var modes []string
	for _, op := range scene.Ops() {
		if strings.HasPrefix(op, "set_mode:") {
			modes = append(modes, op)
		}
	}
	want := []string{
		"set_mode:Armature_hero:EDIT",
		"set_mode:Armature_hero:OBJECT",
		"set_mode:Armature_hero:POSE",
		"set_mode:Armature_hero:OBJECT",
	}
	if len(modes) != len(want) {
		t.Fatalf("mode transition count mismatch: %v", modes)
	}
	for i, mode := range want {
		if modes[i] != mode {
			t.Fatalf("mode transition %d mismatch: %s != %s", i, modes[i], mode)
		}
	}
}

func TestAutoRigAppliesConstraintsInScene(t *testing.T) {
	scene, _, _ := rigHumanoid(t)

	radius := scene.Bone("Armature_hero", "bxm.L.radius")
	if radius == nil || len(radius.IkConstraints) != 1 {
		t.Fatalf("radius ik missing")
	}
	ik := radius.IkConstraints[0]
	if ik.TargetBone != "bxm.L.hand_IK_CTRL" || ik.ChainCount != 2 {
		t.Fatalf("radius ik mismatch: %+v", ik)
	}
	if ik.PoleBone != "bxm.L.elbow_POLE_CTRL" || ik.PoleAngleDeg != 180.0 {
		t.Fatalf("radius pole mismatch: %+v", ik)
	}

	rightRadius := scene.Bone("Armature_hero", "bxm.R.radius")
	if rightRadius == nil || len(rightRadius.IkConstraints) != 1 {
		t.Fatalf("right radius ik missing")
	}
	if rightRadius.IkConstraints[0].PoleAngleDeg != 75.0 {
		t.Fatalf("right pole angle mismatch: %v", rightRadius.IkConstraints[0].PoleAngleDeg)
	}

	shin := scene.Bone("Armature_hero", "bxm.L.shin")
	if shin == nil || len(shin.IkConstraints) != 1 {
		t.Fatalf("shin ik missing")
	}
	if shin.IkConstraints[0].PoleBone != "bxm.L.knee_POLE_CTRL" {
		t.Fatalf("shin pole mismatch: %+v", shin.IkConstraints[0])
	}

	foot := scene.Bone("Armature_hero", "bxm.L.foot")
	if foot == nil || len(foot.CopyLocations) != 1 {
		t.Fatalf("foot copy location missing")
	}
	if foot.CopyLocations[0].TargetBone != "bxm.L.shin" || foot.CopyLocations[0].HeadTail != 1.0 {
		t.Fatalf("foot copy location mismatch: %+v", foot.CopyLocations[0])
	}

	chest := scene.Bone("Armature_hero", "bxm.C.chest")
	if chest == nil || len(chest.CopyRotations) != 1 {
		t.Fatalf("chest copy rotation missing")
	}
	if chest.CopyRotations[0].Influence != 0.5 || chest.CopyRotations[0].MixMode != mscene.MixModeAdd {
		t.Fatalf("chest copy rotation mismatch: %+v", chest.CopyRotations[0])
	}

	shoulder := scene.Bone("Armature_hero", "bxm.L.shoulder")
	if shoulder == nil || !shoulder.Hidden {
		t.Fatalf("shoulder bone should be hidden")
	}
	if len(shoulder.CopyRotations) != 1 || shoulder.CopyRotations[0].MixMode != mscene.MixModeReplace {
		t.Fatalf("shoulder constraint mismatch: %+v", shoulder.CopyRotations)
	}

	tail2 := scene.Bone("Armature_hero", "bxm.C.tail2")
	if tail2 == nil || len(tail2.IkConstraints) != 1 || tail2.IkConstraints[0].ChainCount != 3 {
		t.Fatalf("tail ik mismatch: %+v", tail2)
	}
}

func TestAutoRigOrganizesCollections(t *testing.T) {
	scene, _, _ := rigHumanoid(t)

	main, ok := scene.Collection("Armature_hero_COLL")
	if !ok {
		t.Fatalf("main collection missing")
	}
	foundArmature := false
	for _, name := range main {
		if name == "Armature_hero" {
			foundArmature = true
		}
	}
	if !foundArmature {
		t.Fatalf("armature not in main collection: %v", main)
	}
	for _, name := range scene.SceneRoot() {
		if name == "Armature_hero" {
			t.Fatalf("armature still linked to scene root")
		}
		if strings.HasPrefix(name, "bxm.") {
			t.Fatalf("boxman mesh still linked to scene root: %s", name)
		}
	}

	meshes, ok := scene.Collection("Armature_hero_COLL_MESH")
	if !ok || len(meshes) == 0 {
		t.Fatalf("mesh collection missing")
	}

	controls, ok := scene.Collection("Armature_hero_COLL_MESHCTRL")
	if !ok {
		t.Fatalf("control mesh collection missing")
	}
	foundDefault := false
	for _, name := range controls {
		if name == "Armature_hero_DEFAULT_CTRL" {
			foundDefault = true
		}
	}
	if !foundDefault {
		t.Fatalf("default control template not in control collection: %v", controls)
	}

	// テンプレートメッシュは生成後に隠される
	template := scene.Mesh("Armature_hero_DEFAULT_CTRL")
	if template == nil || !template.Hidden {
		t.Fatalf("default control template should be hidden")
	}
}

func TestAutoRigReportsPhases(t *testing.T) {
	_, _, reporter := rigHumanoid(t)

	var order []AutoRigPhase
	seen := map[AutoRigPhase]bool{}
	for _, event := range reporter.events {
		if !seen[event.Phase] {
			seen[event.Phase] = true
			order = append(order, event.Phase)
		}
	}
	want := []AutoRigPhase{
		AutoRigPhaseTreeValidated,
		AutoRigPhaseBonesPlanned,
		AutoRigPhaseBonesCreated,
		AutoRigPhaseMeshesCreated,
		AutoRigPhaseMeshesParented,
		AutoRigPhaseControlsCreated,
		AutoRigPhaseCollectionsAssigned,
		AutoRigPhaseArmatureLinked,
	}
	if len(order) != len(want) {
		t.Fatalf("phase order mismatch: %v", order)
	}
	for i, phase := range want {
		if order[i] != phase {
			t.Fatalf("phase %d mismatch: %s != %s", i, order[i], phase)
		}
	}
}

func TestAutoRigCountsOneRiggerPerNode(t *testing.T) {
	root := testNode("hero", model.OrientationCenter, model.JointTypeObjectRoot, mmath.NewVec3(0, 0, 0),
		testNode("limb", model.OrientationLeft, model.JointTypeDefault, mmath.NewVec3(0, 0, 1)))
	scene := memscene.NewMemScene()
	usecase := NewAutoRigUsecase(scene)
	if err := usecase.InsertTree(root); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	result, err := usecase.AutoRig(AutoRigRequest{Root: root})
	if err != nil {
		t.Fatalf("auto rig failed: %v", err)
	}
	if result.RiggerCount != 2 {
		t.Fatalf("rigger count should match node count: %d", result.RiggerCount)
	}

	full := testHumanoid()
	var nodeCount func(node *model.BoxmanNode) int
	nodeCount = func(node *model.BoxmanNode) int {
		total := 1
		for _, child := range node.Children {
			total += nodeCount(child)
		}
		return total
	}
	_, fullResult, _ := rigHumanoid(t)
	if fullResult.RiggerCount != nodeCount(full) {
		t.Fatalf("rigger count mismatch: %d nodes, %d riggers", nodeCount(full), fullResult.RiggerCount)
	}
}

func TestAutoRigRejectsNonRootTree(t *testing.T) {
	root := testNode("stray", model.OrientationCenter, model.JointTypeDefault, mmath.NewVec3(0, 0, 0))
	usecase := NewAutoRigUsecase(memscene.NewMemScene())
	if _, err := usecase.AutoRig(AutoRigRequest{Root: root}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestAutoRigRejectsNilTree(t *testing.T) {
	usecase := NewAutoRigUsecase(memscene.NewMemScene())
	if _, err := usecase.AutoRig(AutoRigRequest{}); err == nil {
		t.Fatalf("expected error for nil tree")
	}
}

func TestInsertTreeCreatesAllMeshes(t *testing.T) {
	root := testHumanoid()
	scene := memscene.NewMemScene()
	usecase := NewAutoRigUsecase(scene)
	if err := usecase.InsertTree(root); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var walk func(node *model.BoxmanNode)
	walk = func(node *model.BoxmanNode) {
		if scene.Mesh(node.ObjectName()) == nil {
			t.Fatalf("mesh %s not created", node.ObjectName())
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)
}
