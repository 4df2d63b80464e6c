package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Sessions: one row per counting run
CREATE TABLE IF NOT EXISTS sessions (
    session_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    language TEXT,                -- forced language, empty when detected per document
    top_keywords TEXT             -- JSON array of "word:count" strings
);

CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);

-- Documents: per-source results within a session
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id INTEGER NOT NULL,
    source TEXT NOT NULL,
    source_kind TEXT NOT NULL,    -- url or file
    title TEXT,
    language TEXT,
    language_confidence REAL,
    word_count INTEGER DEFAULT 0,
    distinct_count INTEGER DEFAULT 0,
    status TEXT NOT NULL,         -- success or failed
    error_type TEXT,
    error_message TEXT,
    FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_documents_session ON documents(session_id);
CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);

-- Token counts: aggregate distribution of a session
CREATE TABLE IF NOT EXISTS token_counts (
    session_id INTEGER NOT NULL,
    token TEXT NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (session_id, token),
    FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
) WITHOUT ROWID;

CREATE INDEX IF NOT EXISTS idx_token_counts_rank ON token_counts(session_id, count DESC);
`
