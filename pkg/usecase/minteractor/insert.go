// 指示: PakkanenAnastacia
package minteractor

import (
	"fmt"

	"github.com/PakkanenAnastacia/MrBoxman/pkg/domain/model"
	"github.com/PakkanenAnastacia/MrBoxman/pkg/usecase/port/mscene"
)

// InsertTree はツリーの各ノードをメッシュオブジェクトとしてシーンへ挿入する。
// リグ合成はシーン上に bxm.* メッシュが揃っていることを前提にする。
func (uc *AutoRigUsecase) InsertTree(root *model.BoxmanNode) error {
	if uc.scene == nil {
		return fmt.Errorf("ホストシーンが設定されていません")
	}
	if root == nil {
		return fmt.Errorf("挿入対象ツリーが未設定です")
	}
	var walk func(node *model.BoxmanNode) error
	walk = func(node *model.BoxmanNode) error {
		definition := mscene.MeshDefinition{
			Name:     node.ObjectName(),
			Location: node.Location,
			Vertices: node.Vertices,
			Polygons: node.Polygons,
		}
		if err := uc.scene.CreateMesh(definition); err != nil {
			return &model.HostOperationFailedError{
				Op:    fmt.Sprintf("insert_mesh:%s", node.ObjectName()),
				Cause: err,
			}
		}
		for _, child := range node.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}
