// 指示: miu200521358
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_model/vrm"
	"github.com/miu200521358/mu_vrmik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_vrmik/pkg/domain/model"
	"github.com/miu200521358/mu_vrmik/pkg/usecase/minteractor"
)

// newChainsCommand はチェーン構築結果の表示コマンドを生成する。
func newChainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chains <model.vrm|scenario.yaml>",
		Short: messages.HelpChainsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChains(cmd, args[0])
		},
	}
}

// runChains は骨格から腕チェーンを構築し、関節と区間長を出力する。
func runChains(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	scenario, vrmPath, err := loadSource(path)
	if err != nil {
		return err
	}
	uc := minteractor.NewIkUsecase(minteractor.IkUsecaseDeps{
		SkeletonReader: vrm.NewVrmRepository(),
		Config:         scenario.RigConfig(),
	})
	skeleton, err := loadWorkSkeleton(uc, scenario, vrmPath)
	if err != nil {
		return err
	}
	built, err := uc.BuildRig()
	if err != nil {
		return err
	}
	if !built {
		return fmt.Errorf("%s", messages.MessageRigNotBuilt)
	}

	rig := uc.Rig()
	fmt.Fprintf(out, "[mu_vrmik] rig=%s joints=%d stance=%s\n", rig.ID, skeleton.Len(), uc.RestStance())
	for _, direction := range model.BoneDirections() {
		chain := rig.Chain(direction)
		names := make([]string, 0, len(chain.Joints))
		for _, index := range chain.Joints {
			joint, err := skeleton.Get(index)
			if err != nil {
				return err
			}
			names = append(names, joint.Name)
		}
		fmt.Fprintf(out, "  %s joints=%v lengths=[%.4f %.4f %.4f] total=%.4f\n",
			direction, names, chain.Lengths[0], chain.Lengths[1], chain.Lengths[2], chain.TotalLength())
	}
	return nil
}
