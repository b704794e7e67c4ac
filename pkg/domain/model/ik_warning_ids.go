// 指示: miu200521358
package model

const (
	// IkWarningChainIncomplete は腕チェーンの関節が揃っていない警告。
	IkWarningChainIncomplete = "IkWarningChainIncomplete"
	// IkWarningChainNotDirectlyParented はチェーン関節の親が直前の関節でない警告。
	IkWarningChainNotDirectlyParented = "IkWarningChainNotDirectlyParented"
	// IkWarningChainSkipped はフレーム中にチェーン解決を見送った警告。
	IkWarningChainSkipped = "IkWarningChainSkipped"
	// IkWarningDegenerateDirection は方向ベクトルが退化した警告。
	IkWarningDegenerateDirection = "IkWarningDegenerateDirection"
	// IkWarningTrackingRootMissing はターゲットの接続先が無い警告。
	IkWarningTrackingRootMissing = "IkWarningTrackingRootMissing"
	// IkWarningAvatarRootMissing は探索起点の関節が見つからない警告。
	IkWarningAvatarRootMissing = "IkWarningAvatarRootMissing"
)
