// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/mmath"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// poleTargetRig はポールターゲットコントロールを生やす能力。肘と膝が用いる。
type poleTargetRig struct {
	// offsetSign はコントロールを X 方向のどちら側へ離すかを決める。
	offsetSign float64
}

// createPoleControlBone は親子の代表サイズ分だけ離した位置にポール用コントロールを作る。
// 親付けは呼び出し側が行う。
func (p *poleTargetRig) createPoleControlBone(c *riggerCore) error {
	parentTypical := c.parent.Node().TypicalSize()
	ownTypical := c.node.TypicalSize()

	name := fmt.Sprintf("%s_%s_%s", c.bone.Name, suffixPole, suffixControl)
	control, err := c.ctx.NewEditBone(name)
	if err != nil {
		return err
	}
	control.Head = c.bone.Head.Added(mmath.UnitX().MuledScalar(parentTypical * p.offsetSign))
	control.Tail = c.bone.Head.Added(mmath.UnitX().MuledScalar((parentTypical + ownTypical) * p.offsetSign))
	c.controlBone = control
	return nil
}

// queueAttachPoleShape はポール用十字シェイプの割当を積む。
func (p *poleTargetRig) queueAttachPoleShape(c *riggerCore) {
	c.ctx.QueueControlCreation(&AttachCustomShapeCommand{
		ArmatureName: c.armatureName(),
		BoneName:     c.controlBone.Name,
		ShapeName:    poleControlMeshName(c.armatureName()),
		Scale:        2.0,
	})
}

// ikControlRig は IK コントロールを生やす能力。手・足・鎖の終端が用いる。
type ikControlRig struct {
	poleTargetBone *EditBone
	poleOffsetSign float64
	// placeOnHead はコントロールをボーンの頭に置くか末端に置くかを決める。
	placeOnHead bool
	// affectParent は IK 制約を親ボーンに掛けるか自ボーンに掛けるかを決める。
	affectParent bool
	// angleOrient は向きタグからポール角を決めるかどうか。
	angleOrient bool
}

func newIkControlRig() ikControlRig {
	return ikControlRig{
		poleOffsetSign: 1,
		placeOnHead:    true,
		affectParent:   true,
	}
}

// adoptPoleTarget は親リガーが見つけたポールターゲットを引き継ぐ。
func (ik *ikControlRig) adoptPoleTarget(bone *EditBone, offsetSign float64) {
	ik.poleTargetBone = bone
	ik.poleOffsetSign = offsetSign
}

// ikTargetRigger はポールターゲットを引き継げるリガーを表す。
type ikTargetRigger interface {
	IRigger
	adoptPoleTarget(bone *EditBone, offsetSign float64)
}

// createIkControlBone は代表サイズ分 X 方向へ伸びる IK コントロールを作る。
// absolute が真ならルートへ、偽なら局所コントロールルートへ親付けする。
func (ik *ikControlRig) createIkControlBone(c *riggerCore, absolute bool) error {
	name := fmt.Sprintf("%s_%s_%s", c.bone.Name, suffixIk, suffixControl)
	control, err := c.ctx.NewEditBone(name)
	if err != nil {
		return err
	}

	anchor := c.bone.Head
	if !ik.placeOnHead {
		anchor = c.bone.Tail
	}
	control.Head = anchor
	control.Tail = anchor.Added(mmath.UnitX().MuledScalar(c.node.TypicalSize()))

	if absolute {
		control.Parent = c.absoluteRoot.EditBone()
	} else {
		control.Parent = c.localControlRoot.EditBone()
	}
	control.UseConnect = false
	c.controlBone = control
	return nil
}

// queueIkConstraint は IK 制約の生成を積む。ポールターゲットがあるときだけ
// ポール角を決め、向き指定があれば L/R/C タグの正準角を使う。
func (ik *ikControlRig) queueIkConstraint(c *riggerCore, angleDeg float64, chainLength int) error {
	affected := c.bone.Name
	if ik.affectParent {
		affected = c.parent.EditBone().Name
	}

	constraint := mscene.IkConstraint{
		TargetArmature: c.armatureName(),
		TargetBone:     c.controlBone.Name,
		ChainCount:     chainLength,
	}
	if ik.poleTargetBone != nil {
		poleAngle := angleDeg
		if ik.angleOrient {
			oriented, err := ik.angleFromOrientation(c)
			if err != nil {
				return err
			}
			poleAngle = oriented
		}
		constraint.PoleArmature = c.armatureName()
		constraint.PoleBone = ik.poleTargetBone.Name
		constraint.PoleAngleDeg = poleAngle
	}

	c.ctx.QueueControlCreation(&AddIkConstraintCommand{
		ArmatureName:    c.armatureName(),
		BoneName:        affected,
		Constraint:      constraint,
		ControlBoneName: c.controlBone.Name,
		ControlShape:    ikControlMeshName(c.armatureName()),
	})
	return nil
}

// angleFromOrientation はポールの張り出し方向と L/R/C タグから正準角を返す。
func (ik *ikControlRig) angleFromOrientation(c *riggerCore) (float64, error) {
	switch ik.poleOffsetSign {
	case 1:
		if c.node.Properties.Orientation == model.OrientationRight {
			return -105.0, nil
		}
		return 0.0, nil
	case -1:
		if c.node.Properties.Orientation == model.OrientationRight {
			return 75.0, nil
		}
		return 180.0, nil
	default:
		return 0, fmt.Errorf("ポールターゲットの方向符号が不正です: %v", ik.poleOffsetSign)
	}
}

// queueAddRotationConstraint は IK コントロールの回転を自ボーンへ加算する制約を積む。
func (ik *ikControlRig) queueAddRotationConstraint(c *riggerCore) {
	c.queueCopyRotation(c.bone.Name, c.controlBone.Name, mscene.CopyRotationConstraint{
		MixMode:     mscene.MixModeAdd,
		OwnerSpace:  mscene.ConstraintSpaceLocal,
		TargetSpace: mscene.ConstraintSpaceLocal,
		Influence:   1.0,
	})
}
