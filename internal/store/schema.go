package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS journal (
    entry_id             TEXT PRIMARY KEY,
    created_at           TEXT NOT NULL,
    profile              TEXT,
    base_revenue         REAL NOT NULL,
    base_expenses        REAL NOT NULL,
    base_students        REAL NOT NULL,
    base_investment      REAL NOT NULL,
    revenue              REAL NOT NULL,
    expenses             REAL NOT NULL,
    students             REAL NOT NULL,
    investment           REAL NOT NULL,
    raw_profit           REAL NOT NULL,
    raw_margin           REAL NOT NULL,
    eff_revenue          REAL NOT NULL,
    eff_expenses         REAL NOT NULL,
    eff_profit           REAL NOT NULL,
    eff_margin           REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_scenarios (
    entry_id             TEXT NOT NULL REFERENCES journal(entry_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    scenario             TEXT NOT NULL,
    PRIMARY KEY (entry_id, position)
);

CREATE INDEX IF NOT EXISTS idx_journal_created ON journal(created_at);
`
