// 指示: miu200521358
// Package messages はログとCLI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	HelpUsageTitle  = "使い方"
	HelpSolveShort  = "シナリオのフレームを順に進めて腕IKを解決する"
	HelpChainsShort = "骨格から腕チェーンを構築して区間長を表示する"

	MessageLoadFailed       = "読み込み失敗"
	MessageScenarioRequired = "シナリオファイルを指定してください"
	MessageSkeletonRequired = "骨格が見つかりません。VRMパスかシナリオの skeleton を指定してください"
	MessageRigNotBuilt      = "腕チェーンを構築できませんでした"

	LogLoadSuccess          = "骨格読み込み成功: %s joints=%d"
	LogRigBuilt             = "IKリグ構築: id=%s left=%v right=%v"
	LogRigStance            = "休息姿勢の構え: stance=%s"
	LogRigIncomplete        = "[%s] 腕チェーンの関節が不足しています: missing=%v"
	LogRigNotDirectParent   = "[%s] チェーン関節の親が直前の関節ではありません: joint=%s parent=%d want=%d"
	LogAvatarRootMissing    = "[%s] 探索起点の関節が見つかりません: %s"
	LogTrackingRootMissing  = "[%s] ターゲットの接続先がありません。目標点は原点のままです"
	LogGateChanged          = "IKゲート切替: frame=%d open=%v removed=%d"
	LogChainSkipped         = "[%s] チェーン解決を見送りました: frame=%d side=%s err=%v"
	LogChainDegenerate      = "[%s] 方向ベクトルが退化しました: frame=%d side=%s segments=%d"
	LogChainSolved          = "チェーン解決: frame=%d side=%s reachable=%v end=%s target=%s"
	LogFrameVerbose         = "フレーム処理: frame=%d gate=%v applied=%v"
	LogFrameDone            = "フレーム処理完了: frames=%d applied=%d elapsed=%s"
	LogFabrikVerbose        = "FABRIK: side=%s reachable=%v end=%s"
	LogSynthesizeVerbose    = "回転合成: side=%s joint=%d local=%s"
	LogBatchModelResult     = "%s: rig=%v joints=%d elapsed=%s"
	LogVrmInfoHumanoidBones = "VRMヒューマノイド: version=%s bones=%d nodes=%d"
)
