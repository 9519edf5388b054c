package grammar

// Node kinds produced by the parser. Statement kinds appear as children of
// the source_file root; the rest are interior or leaf kinds referenced when
// walking a tree.
const (
	KindSourceFile = "source_file"
	KindErrorNode  = "ERROR"

	KindSelect                = "select_statement"
	KindInsert                = "insert_statement"
	KindUpdate                = "update_statement"
	KindDelete                = "delete_statement"
	KindUse                   = "use_statement"
	KindTruncate              = "truncate_statement"
	KindApplyBatch            = "apply_batch_statement"
	KindCreateKeyspace        = "create_keyspace_statement"
	KindAlterKeyspace         = "alter_keyspace_statement"
	KindDropKeyspace          = "drop_keyspace_statement"
	KindCreateTable           = "create_table_statement"
	KindAlterTable            = "alter_table_statement"
	KindDropTable             = "drop_table_statement"
	KindCreateIndex           = "create_index_statement"
	KindDropIndex             = "drop_index_statement"
	KindCreateView            = "create_materialized_view_statement"
	KindAlterView             = "alter_materialized_view_statement"
	KindDropView              = "drop_materialized_view_statement"
	KindCreateType            = "create_type_statement"
	KindAlterType             = "alter_type_statement"
	KindDropType              = "drop_type_statement"
	KindCreateFunction        = "create_function_statement"
	KindDropFunction          = "drop_function_statement"
	KindCreateAggregate       = "create_aggregate_statement"
	KindDropAggregate         = "drop_aggregate_statement"
	KindCreateTrigger         = "create_trigger_statement"
	KindDropTrigger           = "drop_trigger_statement"
	KindCreateRole            = "create_role_statement"
	KindAlterRole             = "alter_role_statement"
	KindDropRole              = "drop_role_statement"
	KindCreateUser            = "create_user_statement"
	KindAlterUser             = "alter_user_statement"
	KindDropUser              = "drop_user_statement"
	KindGrant                 = "grant_statement"
	KindRevoke                = "revoke_statement"
	KindListPermissions       = "list_permissions_statement"
	KindListRoles             = "list_roles_statement"

	KindColumn       = "column"
	KindIdentifier   = "identifier"
	KindConstant     = "constant"
	KindNull         = "null"
	KindBindMarker   = "bind_marker"
	KindFunctionCall = "function_call"
	KindTableName    = "table_name"
	KindDataType     = "data_type"
	KindOperator     = "operator"
	KindIndexExpr    = "index"
	KindOptionName   = "option_name"

	KindIfNotExists    = "if_not_exists"
	KindIfExists       = "if_exists"
	KindOrReplace      = "or_replace"
	KindDistinct       = "distinct"
	KindJSONMarker     = "json"
	KindAllowFiltering = "allow_filtering"
	KindAsc            = "asc"
	KindDesc           = "desc"
	KindUnlogged       = "unlogged"
	KindCounter        = "counter"
	KindNoRecursive    = "norecursive"
	KindSuperuser      = "superuser"
	KindNoSuperuser    = "nosuperuser"
	KindPrimaryKeyFlag = "primary_key"

	KindSelectElement   = "select_element"
	KindWhereSpec       = "where_spec"
	KindIfSpec          = "if_spec"
	KindRelationElement = "relation_element"
	KindOrderSpec       = "order_spec"
	KindLimitSpec       = "limit_spec"
	KindColumnList      = "column_list"
	KindExpressionList  = "expression_list"
	KindAssignment      = "assignment_element"
	KindAssignmentPlus  = "assignment_plus"
	KindAssignmentMinus = "assignment_minus"
	KindMapLiteral      = "assignment_map"
	KindSetLiteral      = "assignment_set"
	KindListLiteral     = "assignment_list"
	KindTupleLiteral    = "assignment_tuple"
	KindBeginBatch      = "begin_batch"
	KindUsingClause     = "using_ttl_timestamp"
	KindTTL             = "ttl"
	KindTimestamp       = "timestamp"
	KindDeleteColumn    = "delete_column_item"

	KindColumnDefinition  = "column_definition"
	KindPrimaryKeyElement = "primary_key_element"
	KindPartitionKeyList  = "partition_key_list"
	KindClusteringKeyList = "clustering_key_list"
	KindWithElement       = "with_element"
	KindTableOption       = "table_option"
	KindClusteringOrder   = "clustering_order"
	KindCompactStorage    = "compact_storage"
	KindOptionHash        = "option_hash"
	KindReplicationList   = "replication_list"
	KindDurableWrites     = "durable_writes"

	KindAlterTableAdd        = "alter_table_add"
	KindAlterTableDrop       = "alter_table_drop_columns"
	KindAlterTableDropCS     = "alter_table_drop_compact_storage"
	KindAlterTableRename     = "alter_table_rename"
	KindAlterTableWith       = "alter_table_with"
	KindAlterTypeAlterColumn = "alter_type_alter_column"
	KindAlterTypeAdd         = "alter_type_add"
	KindAlterTypeRename      = "alter_type_rename"
	KindRenamePair           = "rename_pair"

	KindIndexColumn  = "index_column"
	KindIndexKeys    = "index_keys"
	KindIndexEntries = "index_entries"
	KindIndexFull    = "index_full"

	KindReturnsNullOnNull = "returns_null_on_null_input"
	KindCalledOnNull      = "called_on_null_input"
	KindInitCondList      = "init_cond_list"
	KindInitCondHash      = "init_cond_hash"

	KindRolePassword = "role_password"
	KindRoleSuper    = "role_superuser"
	KindRoleLogin    = "role_login"
	KindRoleOptions  = "role_options"
	KindUserPassword = "user_password"

	KindPrivilege            = "privilege"
	KindResourceAllFunctions = "resource_all_functions"
	KindResourceAllKeyspaces = "resource_all_keyspaces"
	KindResourceAllRoles     = "resource_all_roles"
	KindResourceFunction     = "resource_function"
	KindResourceKeyspace     = "resource_keyspace"
	KindResourceRole         = "resource_role"
	KindResourceTable        = "resource_table"
)
