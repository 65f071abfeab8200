package dashboard

// withOptimisticUpdate runs the optimistic-update-with-rollback pattern:
// apply mutates local state synchronously, commit performs the durable
// write, and revert restores the prior state if the commit fails. The
// commit error is returned unchanged.
func withOptimisticUpdate(apply func(), commit func() error, revert func()) error {
	apply()
	if err := commit(); err != nil {
		revert()
		return err
	}
	return nil
}
