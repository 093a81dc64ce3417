package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".recheck"

	// StoreDirName is the name of the result store directory.
	StoreDirName = "store"

	// ResultsFileName is the name of the file holding the last check results.
	ResultsFileName = "results.json"

	// ManifestFileName is the name of the manifest configuration file.
	ManifestFileName = "recheck.yaml"

	// SourceSuffix is the file extension of puzzle sources.
	SourceSuffix = ".clvm"

	// ArtifactSuffix is appended to a puzzle file name to form its artifact name.
	ArtifactSuffix = ".hex"

	// DefaultPuzzleDir is the puzzle directory used when no manifest is present.
	DefaultPuzzleDir = "chia/wallet/puzzles"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StatePath returns the recheck metadata directory of the manifest root.
func StatePath(root string) string {
	return filepath.Join(root, StateDirName)
}

// ResultsPath returns the result store file of the manifest root,
// <root>/.recheck/store/results.json.
func ResultsPath(root string) string {
	return filepath.Join(root, StateDirName, StoreDirName, ResultsFileName)
}

// DefaultCompilerCommand is the compiler invocation used when no manifest is present.
// It runs the clvm_tools compiler with the puzzle directory on the include path.
func DefaultCompilerCommand() []string {
	return []string{"run", "-d", "-i", "{{dir}}", "{{source}}"}
}

// DefaultPuzzles returns the built-in list of puzzles, in check order.
func DefaultPuzzles() []string {
	return []string{
		"block_program_zero.clvm",
		"calculate_synthetic_public_key.clvm",
		"cat.clvm",
		"chialisp_deserialisation.clvm",
		"decompress_coin_spend_entry.clvm",
		"decompress_coin_spend_entry_with_prefix.clvm",
		"decompress_puzzle.clvm",
		"delegated_tail.clvm",
		"did_innerpuz.clvm",
		"everything_with_signature.clvm",
		"generator_for_single_coin.clvm",
		"genesis_by_coin_id.clvm",
		"genesis_by_puzzle_hash.clvm",
		"lock.inner.puzzle.clvm",
		"nft_metadata_updater_default.clvm",
		"nft_metadata_updater_updateable.clvm",
		"nft_ownership_layer.clvm",
		"nft_ownership_transfer_program_one_way_claim_with_royalties.clvm",
		"nft_ownership_transfer_program_one_way_claim_with_royalties_new.clvm",
		"nft_state_layer.clvm",
		"p2_conditions.clvm",
		"p2_delegated_conditions.clvm",
		"p2_delegated_puzzle.clvm",
		"p2_delegated_puzzle_or_hidden_puzzle.clvm",
		"p2_m_of_n_delegate_direct.clvm",
		"p2_puzzle_hash.clvm",
		"p2_singleton.clvm",
		"p2_singleton_or_delayed_puzhash.clvm",
		"pool_member_innerpuz.clvm",
		"pool_waitingroom_innerpuz.clvm",
		"rl_aggregation.clvm",
		"rl.clvm",
		"rom_bootstrap_generator.clvm",
		"settlement_payments.clvm",
		"sha256tree_module.clvm",
		"singleton_launcher.clvm",
		"singleton_top_layer.clvm",
		"singleton_top_layer_v1_1.clvm",
		"test_generator_deserialize.clvm",
		"test_multiple_generator_input_arguments.clvm",
	}
}
