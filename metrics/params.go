package metrics

const LevelDBPrefix = "basex/db/alphabets/"

var (
	// codec
	codecModule                = "codec"
	Encode_timerName           = "codec/Encode/encode"       // 统计编码的频率和耗时分布
	Decode_timerName           = "codec/Decode/decode"       // 统计解码的频率和耗时分布
	DecodeFailed_meterName     = "codec/Decode/decodeFailed" // 非法符号导致解码失败的频率
	EncodeBytesIn_meterName    = "codec/Encode/bytesIn"      // 待编码的字节数
	DecodeBytesOut_meterName   = "codec/Decode/bytesOut"     // 解码得到的字节数
	BatchJobs_counterName      = "codec/Batch/jobs"          // 批处理提交的任务数
	BatchRunning_gaugeName     = "codec/Batch/running"       // 批处理池中正在运行的worker数
	AlphabetResolve_meterName  = "codec/Resolve/resolve"
	AlphabetNotFound_meterName = "codec/Resolve/notFound"

	// leveldb
	leveldbModule           = LevelDBPrefix
	LevelDb_get_timerName   = LevelDBPrefix + "user/gets"
	LevelDb_put_timerName   = LevelDBPrefix + "user/puts"
	LevelDb_del_timerName   = LevelDBPrefix + "user/dels"
	LevelDb_miss_meterName  = LevelDBPrefix + "user/misses" // 对数据库进行get操作失败的频率
	LevelDb_read_meterName  = LevelDBPrefix + "user/reads"  // get数据库出来的数据字节大小
	LevelDb_write_meterName = LevelDBPrefix + "user/writes" // put进数据库的数据字节大小
)

// Modules lists the metric name prefixes of every module.
var Modules = []string{codecModule, leveldbModule}
