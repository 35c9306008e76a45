package clickhouse

import (
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

const countTransactionsQuery = `SELECT count() FROM nem_transactions FINAL WHERE network = ? AND block_number = ?`

func (s *RepositorySuite) TestSaveBlockIsIdempotent() {
	b := newInsertBlock(7, "prev", "t1", "t2")

	s.Require().NoError(s.repo.SaveBlock(s.testCtx, b))
	s.Require().NoError(s.repo.SaveBlock(s.testCtx, b))

	s.Equal(uint64(2), s.countRows(countTransactionsQuery, string(model.Testnet), int64(7)))

	count, err := s.repo.CountBlocksInRange(s.testCtx, 7, 7)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	found, err := s.repo.FindBlocksByHash(s.testCtx, []string{b.Block.Hash, "unknown"})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(b.Block.Number, found[0].Number)
	s.Equal(b.Block.PrevBlockHash, found[0].PrevBlockHash)
	s.Equal([]string{"t1", "t2"}, found[0].TxHashes)
	s.True(b.Block.Timestamp.Equal(found[0].Timestamp))
}

func (s *RepositorySuite) TestCountAndLastBlocks() {
	prev := ""
	for n := int64(1); n <= 5; n++ {
		b := newInsertBlock(n, prev)
		s.Require().NoError(s.repo.SaveBlock(s.testCtx, b))
		prev = b.Block.Hash
	}

	count, err := s.repo.CountBlocksInRange(s.testCtx, 0, 9)
	s.Require().NoError(err)
	s.Equal(int64(5), count)

	last, err := s.repo.FindLastBlocks(s.testCtx, 2)
	s.Require().NoError(err)
	s.Require().Len(last, 2)
	s.Equal(int64(5), last[0].Number)
	s.Equal(int64(4), last[1].Number)
	s.Equal(last[1].Hash, last[0].PrevBlockHash)
}

func (s *RepositorySuite) TestRollbackRemovesBlockAndTransactions() {
	s.Require().NoError(s.repo.SaveBlock(s.testCtx, newInsertBlock(1, "", "a")))
	s.Require().NoError(s.repo.SaveBlock(s.testCtx, newInsertBlock(2, "", "b")))

	s.Require().NoError(s.repo.RemoveBlock(s.testCtx, 2))
	s.Require().NoError(s.repo.RemoveTxsFromHeight(s.testCtx, 2))

	count, err := s.repo.CountBlocksInRange(s.testCtx, 1, 2)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
	s.Equal(uint64(0), s.countRows(countTransactionsQuery, string(model.Testnet), int64(2)))
	s.Equal(uint64(1), s.countRows(countTransactionsQuery, string(model.Testnet), int64(1)))
}

func (s *RepositorySuite) TestRemoveTxsAtHeightKeepsOtherBlocks() {
	s.Require().NoError(s.repo.SaveBlock(s.testCtx, newInsertBlock(10, "", "t10")))
	s.Require().NoError(s.repo.SaveBlock(s.testCtx, newInsertBlock(50, "", "t50")))

	s.Require().NoError(s.repo.RemoveTxsAtHeight(s.testCtx, 10))

	s.Equal(uint64(0), s.countRows(countTransactionsQuery, string(model.Testnet), int64(10)))
	s.Equal(uint64(1), s.countRows(countTransactionsQuery, string(model.Testnet), int64(50)))
}

func (s *RepositorySuite) TestUnconfirmedPool() {
	pending := newInsertBlock(3, "", "p1", "p2").Txs
	for _, tx := range pending {
		s.Require().NoError(s.repo.SaveUnconfirmedTx(s.testCtx, tx))
	}
	s.Equal(uint64(2), s.countRows(countTransactionsQuery, string(model.Testnet), model.UnconfirmedBlockNumber))

	s.Require().NoError(s.repo.PurgeConfirmedFromUnconfirmedPool(s.testCtx, []string{"p1"}))
	s.Equal(uint64(1), s.countRows(countTransactionsQuery, string(model.Testnet), model.UnconfirmedBlockNumber))

	s.Require().NoError(s.repo.RemoveUnconfirmedTxs(s.testCtx))
	s.Equal(uint64(0), s.countRows(countTransactionsQuery, string(model.Testnet), model.UnconfirmedBlockNumber))
}

func (s *RepositorySuite) TestActiveAccounts() {
	s.seedAccounts(map[string]uint8{"TA": 1, "TB": 0, "TC": 1})

	active, err := s.repo.ActiveAccounts(s.testCtx, []string{"TA", "TB", "TZ"})
	s.Require().NoError(err)
	s.Equal([]string{"TA"}, active)
}
