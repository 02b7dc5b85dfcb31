// 指示: PakkanenAnastacia
package minteractor

import (
	"errors"
	"testing"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

func newTestFactory() (*RiggerFactory, *RootRigger) {
	root := testNode("hero", model.OrientationCenter, model.JointTypeObjectRoot, mmath.NewVec3(0, 0, 0))
	factory := NewRiggerFactory(NewSynthesisContext(ArmatureNameFor(root)))
	return factory, NewRootRigger(root, factory)
}

func TestFactoryCreatesRiggerByJointType(t *testing.T) {
	factory, rootRigger := newTestFactory()

	cases := []struct {
		jointType model.JointType
		rigger    string
	}{
		{model.JointTypeDefault, "DefaultRigger"},
		{model.JointTypeAccessory, "AccessoryRigger"},
		{model.JointTypeSpineRoot, "SpineRootRigger"},
		{model.JointTypeNeckRoot, "NeckRootRigger"},
		{model.JointTypeHead, "HeadRigger"},
		{model.JointTypeShoulderRoot, "ShoulderRigger"},
		{model.JointTypeLegThigh, "ThighRigger"},
		{model.JointTypeChainRoot, "ChainRootRigger"},
	}
	for _, c := range cases {
		node := testNode("child", model.OrientationCenter, c.jointType, mmath.NewVec3(0, 0, 1))
		rigger, err := factory.Create(node, rootRigger)
		if err != nil {
			t.Fatalf("create %s failed: %v", c.jointType, err)
		}
		if rigger.RiggerName() != c.rigger {
			t.Fatalf("rigger mismatch for %s: %s", c.jointType, rigger.RiggerName())
		}
	}
	// ルートリガーも1体として数える
	if factory.Context().RiggerCount() != len(cases)+1 {
		t.Fatalf("rigger count mismatch: %d", factory.Context().RiggerCount())
	}
}

func TestFactoryRejectsIkDirectUnderRoot(t *testing.T) {
	factory, rootRigger := newTestFactory()

	for _, jointType := range []model.JointType{
		model.JointTypeHandRoot,
		model.JointTypeFootRoot,
		model.JointTypeChainSegment,
	} {
		node := testNode("child", model.OrientationCenter, jointType, mmath.NewVec3(0, 0, 1))
		_, err := factory.Create(node, rootRigger)
		var incompatible *model.IncompatibleChainError
		if !errors.As(err, &incompatible) {
			t.Fatalf("expected IncompatibleChainError for %s, got %v", jointType, err)
		}
		if incompatible.Parent != model.JointTypeObjectRoot || incompatible.Child != jointType {
			t.Fatalf("error detail mismatch: %+v", incompatible)
		}
	}
}

func TestFactoryRejectsNestedRoot(t *testing.T) {
	factory, rootRigger := newTestFactory()
	node := testNode("child", model.OrientationCenter, model.JointTypeObjectRoot, mmath.NewVec3(0, 0, 1))
	_, err := factory.Create(node, rootRigger)
	var incompatible *model.IncompatibleChainError
	if !errors.As(err, &incompatible) {
		t.Fatalf("expected IncompatibleChainError, got %v", err)
	}
}

func TestFactoryRejectsUnknownJointType(t *testing.T) {
	factory, rootRigger := newTestFactory()
	node := testNode("child", model.OrientationCenter, model.JointType("FLIPPER"), mmath.NewVec3(0, 0, 1))
	_, err := factory.Create(node, rootRigger)
	var unsupported *model.UnsupportedJointTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedJointTypeError, got %v", err)
	}
}

func TestAccessoryAcceptsAnyChild(t *testing.T) {
	if err := verifyChain(model.JointTypeAccessory, model.JointTypeHandRoot); err != nil {
		t.Fatalf("accessory should accept any child: %v", err)
	}
	if err := verifyChain(model.JointTypeAccessory, model.JointTypeObjectRoot); err != nil {
		t.Fatalf("accessory should accept any child: %v", err)
	}
}

func TestVerifyChainArmAndLegExclusions(t *testing.T) {
	// 橈骨は手首と肘を受けるが、足首は受けない
	if err := verifyChain(model.JointTypeArmRadius, model.JointTypeHandRoot); err != nil {
		t.Fatalf("radius should accept hand: %v", err)
	}
	if err := verifyChain(model.JointTypeArmRadius, model.JointTypeFootRoot); err == nil {
		t.Fatalf("radius should reject foot")
	}
	// 脛は足首と膝を受けるが、手首は受けない
	if err := verifyChain(model.JointTypeLegShin, model.JointTypeFootRoot); err != nil {
		t.Fatalf("shin should accept foot: %v", err)
	}
	if err := verifyChain(model.JointTypeLegShin, model.JointTypeHandRoot); err == nil {
		t.Fatalf("shin should reject hand")
	}
	// 上腕は脛を受けない
	if err := verifyChain(model.JointTypeArmHumerus, model.JointTypeLegShin); err == nil {
		t.Fatalf("humerus should reject shin")
	}
}

func TestSynthesisContextRejectsDuplicateBoneNames(t *testing.T) {
	ctx := NewSynthesisContext("Armature_hero")
	if _, err := ctx.NewEditBone("bxm.C.spine"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := ctx.NewEditBone("bxm.C.spine"); err == nil {
		t.Fatalf("duplicate bone name should be rejected")
	}
	if _, err := ctx.NewEditBone(""); err == nil {
		t.Fatalf("empty bone name should be rejected")
	}
}
