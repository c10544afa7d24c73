package catalog

import (
	"strings"

	"github.com/pthm/vertica/pkg/schema"
)

// SchemaName is the schema holding the catalog views.
const SchemaName = "v_catalog"

var meta = schema.NewMetaData(SchemaName)

func col(name string, typ schema.Type, opts ...schema.ColumnOption) *schema.Column {
	return schema.NewColumn(name, typ, opts...)
}

func since(major, minor int) schema.ColumnOption {
	return schema.WithColumnInfo(ServerVersionKey, V(major, minor))
}

var VSchemata = meta.MustTable("v_schemata", []*schema.Column{
	col("schema_id", schema.Integer),
	col("schema_name", schema.Char),
	col("schema_owner_id", schema.Integer),
	col("schema_owner", schema.Char),
	col("system_schema_creator", schema.Char),
	col("is_system_schema", schema.Boolean),
})

var VNamespace = meta.MustTable("v_namespace", []*schema.Column{
	col("oid", OID),
	col("nspname", Name),
	col("nspowner", OID),
})

var VClass = meta.MustTable("v_class", []*schema.Column{
	col("oid", OID, since(9, 3)),
	col("relname", Name),
	col("relnamespace", OID),
	col("reltype", OID),
	col("reloftype", OID),
	col("relowner", OID),
	col("relam", OID),
	col("relfilenode", OID),
	col("reltablespace", OID),
	col("relpages", schema.Integer),
	col("reltuples", schema.Float),
	col("relallvisible", schema.Integer, since(9, 2)),
	col("reltoastrelid", OID),
	col("relhasindex", schema.Boolean),
	col("relisshared", schema.Boolean),
	col("relpersistence", schema.Char, since(9, 1)),
	col("relkind", schema.Char),
	col("relnatts", schema.SmallInteger),
	col("relchecks", schema.SmallInteger),
	col("relhasrules", schema.Boolean),
	col("relhastriggers", schema.Boolean),
	col("relhassubclass", schema.Boolean),
	col("relrowsecurity", schema.Boolean),
	col("relforcerowsecurity", schema.Boolean, since(9, 5)),
	col("relispopulated", schema.Boolean, since(9, 3)),
	col("relreplident", schema.Char, since(9, 4)),
	col("relispartition", schema.Boolean, since(10, 0)),
	col("relrewrite", OID, since(11, 0)),
	col("reloptions", schema.Array(schema.Text)),
})

var VType = meta.MustTable("v_type", []*schema.Column{
	col("oid", OID, since(9, 3)),
	col("typname", Name),
	col("typnamespace", OID),
	col("typowner", OID),
	col("typlen", schema.SmallInteger),
	col("typbyval", schema.Boolean),
	col("typtype", schema.Char),
	col("typcategory", schema.Char),
	col("typispreferred", schema.Boolean),
	col("typisdefined", schema.Boolean),
	col("typdelim", schema.Char),
	col("typrelid", OID),
	col("typelem", OID),
	col("typarray", OID),
	col("typinput", RegProc),
	col("typoutput", RegProc),
	col("typreceive", RegProc),
	col("typsend", RegProc),
	col("typmodin", RegProc),
	col("typmodout", RegProc),
	col("typanalyze", RegProc),
	col("typalign", schema.Char),
	col("typstorage", schema.Char),
	col("typnotnull", schema.Boolean),
	col("typbasetype", OID),
	col("typtypmod", schema.Integer),
	col("typndims", schema.Integer),
	col("typcollation", OID, since(9, 1)),
	col("typdefault", schema.Text),
})

var VIndex = meta.MustTable("v_index", []*schema.Column{
	col("indexrelid", OID),
	col("indrelid", OID),
	col("indnatts", schema.SmallInteger),
	col("indnkeyatts", schema.SmallInteger, since(11, 0)),
	col("indisunique", schema.Boolean),
	col("indnullsnotdistinct", schema.Boolean, since(15, 0)),
	col("indisprimary", schema.Boolean),
	col("indisexclusion", schema.Boolean, since(9, 1)),
	col("indimmediate", schema.Boolean),
	col("indisclustered", schema.Boolean),
	col("indisvalid", schema.Boolean),
	col("indcheckxmin", schema.Boolean),
	col("indisready", schema.Boolean),
	col("indislive", schema.Boolean, since(9, 3)),
	col("indisreplident", schema.Boolean),
	col("indkey", Int2Vector),
	col("indcollation", OIDVector, since(9, 1)),
	col("indclass", OIDVector),
	col("indoption", Int2Vector),
	col("indexprs", NodeTree),
	col("indpred", NodeTree),
})

var VAttribute = meta.MustTable("v_attribute", []*schema.Column{
	col("attrelid", OID),
	col("attname", Name),
	col("atttypid", OID),
	col("attstattarget", schema.Integer),
	col("attlen", schema.SmallInteger),
	col("attnum", schema.SmallInteger),
	col("attndims", schema.Integer),
	col("attcacheoff", schema.Integer),
	col("atttypmod", schema.Integer),
	col("attbyval", schema.Boolean),
	col("attstorage", schema.Char),
	col("attalign", schema.Char),
	col("attnotnull", schema.Boolean),
	col("atthasdef", schema.Boolean),
	col("atthasmissing", schema.Boolean, since(11, 0)),
	col("attidentity", schema.Char, since(10, 0)),
	col("attgenerated", schema.Char, since(12, 0)),
	col("attisdropped", schema.Boolean),
	col("attislocal", schema.Boolean),
	col("attinhcount", schema.Integer),
	col("attcollation", OID, since(9, 1)),
})

var VConstraint = meta.MustTable("v_constraint", []*schema.Column{
	col("oid", OID),
	col("conname", Name),
	col("connamespace", OID),
	col("contype", schema.Char),
	col("condeferrable", schema.Boolean),
	col("condeferred", schema.Boolean),
	col("convalidated", schema.Boolean, since(9, 1)),
	col("conrelid", OID),
	col("contypid", OID),
	col("conindid", OID),
	col("conparentid", OID, since(11, 0)),
	col("confrelid", OID),
	col("confupdtype", schema.Char),
	col("confdeltype", schema.Char),
	col("confmatchtype", schema.Char),
	col("conislocal", schema.Boolean),
	col("coninhcount", schema.Integer),
	col("connoinherit", schema.Boolean, since(9, 2)),
	col("conkey", schema.Array(schema.SmallInteger)),
	col("confkey", schema.Array(schema.SmallInteger)),
})

var VSequence = meta.MustTable("v_sequence", []*schema.Column{
	col("seqrelid", OID),
	col("seqtypid", OID),
	col("seqstart", schema.BigInteger),
	col("seqincrement", schema.BigInteger),
	col("seqmax", schema.BigInteger),
	col("seqmin", schema.BigInteger),
	col("seqcache", schema.BigInteger),
	col("seqcycle", schema.Boolean),
}, schema.WithTableInfo(ServerVersionKey, V(10, 0)))

var VAttrdef = meta.MustTable("v_attrdef", []*schema.Column{
	col("oid", OID, since(9, 3)),
	col("adrelid", OID),
	col("adnum", schema.SmallInteger),
	col("adbin", NodeTree),
})

var VDescription = meta.MustTable("v_description", []*schema.Column{
	col("objoid", OID),
	col("classoid", OID),
	col("objsubid", schema.Integer),
	col("description", schema.Text.Collate("C")),
})

var VEnum = meta.MustTable("v_enum", []*schema.Column{
	col("oid", OID, since(9, 3)),
	col("enumtypid", OID),
	col("enumsortorder", schema.Float, since(9, 1)),
	col("enumlabel", Name),
})

var VAm = meta.MustTable("v_am", []*schema.Column{
	col("oid", OID, since(9, 3)),
	col("amname", Name),
	col("amhandler", RegProc, since(9, 6)),
	col("amtype", schema.Char, since(9, 6)),
})

var VCollation = meta.MustTable("v_collation", []*schema.Column{
	col("oid", OID, since(9, 3)),
	col("collname", Name),
	col("collnamespace", OID),
	col("collowner", OID),
	col("collprovider", schema.Char, since(10, 0)),
	col("collisdeterministic", schema.Boolean, since(12, 0)),
	col("collencoding", schema.Integer),
	col("collcollate", schema.Text),
	col("collctype", schema.Text),
	col("colliculocale", schema.Text),
	col("collicurules", schema.Text, since(16, 0)),
	col("collversion", schema.Text, since(10, 0)),
})

// Meta returns the registry holding every catalog table.
func Meta() *schema.MetaData {
	return meta
}

// Tables returns the catalog tables sorted by name.
func Tables() []*schema.Table {
	return meta.Tables()
}

// Lookup finds a catalog table by bare or schema-qualified name.
func Lookup(name string) (*schema.Table, bool) {
	return meta.Lookup(strings.TrimPrefix(name, SchemaName+"."))
}
