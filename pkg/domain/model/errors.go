// 指示: PakkanenAnastacia
package model

import "fmt"

// RiggerError はリグ合成中の一般エラーを表す。
type RiggerError struct {
	Rigger  string
	Message string
}

// Error はエラーメッセージを返す。
func (e *RiggerError) Error() string {
	return fmt.Sprintf("リガー %s: %s", e.Rigger, e.Message)
}

// UnsupportedJointTypeError は未登録の関節種別を表す。
type UnsupportedJointTypeError struct {
	JointType JointType
}

// Error はエラーメッセージを返す。
func (e *UnsupportedJointTypeError) Error() string {
	return fmt.Sprintf("関節種別 %s に対応するリガーが登録されていません", e.JointType)
}

// IncompatibleChainError は互換性マトリクス違反を表す。
type IncompatibleChainError struct {
	Parent JointType
	Child  JointType
}

// Error はエラーメッセージを返す。
func (e *IncompatibleChainError) Error() string {
	return fmt.Sprintf("関節種別 %s の下に %s を接続することはできません", e.Parent, e.Child)
}

// MissingRequiredChildError は必須子種別の個数違反を表す。
type MissingRequiredChildError struct {
	Rigger   string
	Required JointType
	Count    int
}

// Error はエラーメッセージを返す。
func (e *MissingRequiredChildError) Error() string {
	return fmt.Sprintf("リガー %s は種別 %s の子をちょうど1つ必要としますが %d 個でした",
		e.Rigger, e.Required, e.Count)
}

// DegenerateBoundsError はバウンディングボックスの幅ゼロ軸を表す。
type DegenerateBoundsError struct {
	Target string
	Axis   string
}

// Error はエラーメッセージを返す。
func (e *DegenerateBoundsError) Error() string {
	return fmt.Sprintf("%s の %s 軸の頂点幅がゼロのため拡縮できません", e.Target, e.Axis)
}

// HostOperationFailedError はホストシーン操作の失敗を表す。
type HostOperationFailedError struct {
	Op    string
	Cause error
}

// Error はエラーメッセージを返す。
func (e *HostOperationFailedError) Error() string {
	return fmt.Sprintf("ホスト操作 %s が失敗しました: %v", e.Op, e.Cause)
}

// Unwrap は原因エラーを返す。
func (e *HostOperationFailedError) Unwrap() error {
	return e.Cause
}
