// 指示: PakkanenAnastacia
package minteractor

import (
	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
)

// DefaultRigger は汎用リガー。任意の子構成を扱い、既定の十字シェイプを割り当てる。
type DefaultRigger struct {
	riggerCore
}

// NewDefaultRigger は汎用リガーを生成する。
func NewDefaultRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *DefaultRigger {
	return &DefaultRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *DefaultRigger) RiggerName() string { return "DefaultRigger" }

// Rig はボーンを構築し、子の数に応じて末端と接続を決める。
func (r *DefaultRigger) Rig() error {
	if err := r.newBone(); err != nil {
		return err
	}
	if err := r.rigDefaultChildren(r); err != nil {
		return err
	}
	r.queue()
	return nil
}

// rigDefaultChildren は汎用の三分岐走査を行う。
// 子なしは代表サイズ分の末端、単独の子は接続、複数は非接続で親子付けする。
func (c *riggerCore) rigDefaultChildren(self IRigger) error {
	if len(c.node.Children) == 0 {
		c.tailByTypical()
		return nil
	}

	if len(c.node.Children) == 1 {
		childNode := c.node.Children[0]
		childRigger, err := c.factory.Create(childNode, self)
		if err != nil {
			return err
		}
		if err := childRigger.Rig(); err != nil {
			return err
		}
		if childBone := childRigger.EditBone(); childBone != nil {
			childBone.Parent = c.bone
			childBone.UseConnect = true
			c.bone.Tail = childNode.Location
		} else {
			c.tailByTypical()
		}
		return nil
	}

	c.tailByTypical()
	for _, childNode := range c.node.Children {
		childRigger, err := c.factory.Create(childNode, self)
		if err != nil {
			return err
		}
		if err := childRigger.Rig(); err != nil {
			return err
		}
		if childBone := childRigger.EditBone(); childBone != nil {
			childBone.Parent = c.bone
			childBone.UseConnect = false
		}
	}
	return nil
}

func (r *DefaultRigger) queue() {
	r.queueParentMeshToBone()
	r.queueAttachDefaultShape(r.bone.Name)
	r.queueAddBoneToGroup(model.ExtremityDefault, r.bone.Name)
	r.queueAddBoneToLayers([]int{LayerGlobal, LayerMinors}, r.bone.Name)
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
}

// AccessoryRigger はリグの袋小路。ボーンを作らず、子孫もすべて装飾品として扱う。
type AccessoryRigger struct {
	riggerCore
}

// NewAccessoryRigger は装飾品リガーを生成する。
func NewAccessoryRigger(node *model.BoxmanNode, parent IRigger, factory *RiggerFactory) *AccessoryRigger {
	return &AccessoryRigger{riggerCore: newRiggerCore(node, parent, factory)}
}

// RiggerName はリガー種別名を返す。
func (r *AccessoryRigger) RiggerName() string { return "AccessoryRigger" }

// Rig はメッシュのコレクション移設だけを積み、子も装飾品として直接処理する。
func (r *AccessoryRigger) Rig() error {
	r.queueLinkMeshToCollection(r.meshCollectionName(), "")
	r.queueUnlinkMeshFromCollection("", "")
	for _, childNode := range r.node.Children {
		child := NewAccessoryRigger(childNode, r, r.factory)
		r.ctx.countRigger()
		if err := child.Rig(); err != nil {
			return err
		}
	}
	return nil
}
